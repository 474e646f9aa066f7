// ABOUTME: Mappers for converting between API DTOs and domain models
// ABOUTME: Provides clean separation between the API layer and the reconciler

package mappers

import (
	"headmeta-api/api/dto/requests"
	"headmeta-api/core/domain"
)

// ToMetadata converts a MetadataRequest DTO to a domain Metadata record
func ToMetadata(req *requests.MetadataRequest) domain.Metadata {
	if req == nil {
		return domain.Metadata{}
	}

	record := domain.Metadata{
		Title:       req.Title,
		Description: req.Description,
		Keywords: domain.Keywords{
			Scalar: req.Keywords.Scalar,
			List:   req.Keywords.List,
		},
		Canonical:  req.Canonical,
		Robots:     req.Robots,
		Author:     req.Author,
		Viewport:   req.Viewport,
		ThemeColor: req.ThemeColor,
		Generator:  req.Generator,
		Language:   req.Language,

		OGTitle:       req.OGTitle,
		OGDescription: req.OGDescription,
		OGType:        req.OGType,
		OGURL:         req.OGURL,
		OGImage:       req.OGImage,
		OGSiteName:    req.OGSiteName,
		OGLocale:      req.OGLocale,

		TwitterCard:        req.TwitterCard,
		TwitterSite:        req.TwitterSite,
		TwitterCreator:     req.TwitterCreator,
		TwitterTitle:       req.TwitterTitle,
		TwitterDescription: req.TwitterDescription,
		TwitterImage:       req.TwitterImage,
		TwitterImageAlt:    req.TwitterImageAlt,

		OpenGraph: toOpenGraph(req.OpenGraph),
		Twitter:   toTwitter(req.Twitter),
		JSONLD: domain.JSONLD{
			Doc:  req.JSONLD.Doc,
			Docs: req.JSONLD.Docs,
		},
	}

	// Map custom tags
	for _, tag := range req.CustomTags {
		record.CustomTags = append(record.CustomTags, domain.CustomTag{
			Name:      tag.Name,
			Property:  tag.Property,
			HTTPEquiv: tag.HTTPEquiv,
			Charset:   tag.Charset,
			Content:   tag.Content,
		})
	}

	return record
}

// ToMetadataList converts the ordered request records to domain records
func ToMetadataList(reqs []requests.MetadataRequest) []domain.Metadata {
	records := make([]domain.Metadata, 0, len(reqs))

	for i := range reqs {
		records = append(records, ToMetadata(&reqs[i]))
	}

	return records
}

func toOpenGraph(og *requests.OpenGraphRequest) *domain.OpenGraph {
	if og == nil {
		return nil
	}

	return &domain.OpenGraph{
		Title:       og.Title,
		Description: og.Description,
		Type:        og.Type,
		URL:         og.URL,
		Image:       og.Image,
		ImageWidth:  og.ImageWidth,
		ImageHeight: og.ImageHeight,
		ImageAlt:    og.ImageAlt,
		SiteName:    og.SiteName,
		Locale:      og.Locale,
		Extra:       og.Extra,
	}
}

func toTwitter(tw *requests.TwitterRequest) *domain.Twitter {
	if tw == nil {
		return nil
	}

	return &domain.Twitter{
		Card:        tw.Card,
		Site:        tw.Site,
		Creator:     tw.Creator,
		Title:       tw.Title,
		Description: tw.Description,
		Image:       tw.Image,
		ImageAlt:    tw.ImageAlt,
		Extra:       tw.Extra,
	}
}
