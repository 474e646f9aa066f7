// ABOUTME: Render handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for head metadata reconciliation

package handlers

import (
	"context"
	"net/http"

	"headmeta-api/api/dto/mappers"
	"headmeta-api/api/dto/requests"
	"headmeta-api/api/dto/responses"
	"headmeta-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// RenderHandler handles render-related HTTP requests
type RenderHandler struct {
	renderService interfaces.RenderService
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(renderService interfaces.RenderService) *RenderHandler {
	return &RenderHandler{
		renderService: renderService,
	}
}

// RegisterRoutes registers all render-related routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderPage",
		Method:      http.MethodPost,
		Path:        "/render",
		Summary:     "Reconcile head metadata into a page",
		Description: "Applies the metadata records to the page head in order and returns the full document",
		Tags:        []string{"Render"},
	}, h.RenderPage)

	huma.Register(api, huma.Operation{
		OperationID: "renderHead",
		Method:      http.MethodPost,
		Path:        "/render/head",
		Summary:     "Reconcile head metadata and return the head element",
		Description: "Applies the metadata records to the page head in order and returns just the head element",
		Tags:        []string{"Render"},
	}, h.RenderHead)
}

// RenderPageInput defines the input for the RenderPage operation
type RenderPageInput struct {
	Body requests.RenderRequest `json:"body"`
}

// RenderPageOutput defines the output for the RenderPage operation
type RenderPageOutput struct {
	Body responses.RenderPageResponse
}

// RenderPage handles the POST /render endpoint
func (h *RenderHandler) RenderPage(ctx context.Context, input *RenderPageInput) (*RenderPageOutput, error) {
	records := mappers.ToMetadataList(input.Body.Metadata)

	html, err := h.renderService.RenderPage(ctx, []byte(input.Body.HTML), records)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RenderPageOutput{
		Body: responses.RenderPageResponse{
			HTML:           string(html),
			AppliedRecords: len(records),
		},
	}, nil
}

// RenderHeadInput defines the input for the RenderHead operation
type RenderHeadInput struct {
	Body requests.RenderRequest `json:"body"`
}

// RenderHeadOutput defines the output for the RenderHead operation
type RenderHeadOutput struct {
	Body responses.RenderHeadResponse
}

// RenderHead handles the POST /render/head endpoint
func (h *RenderHandler) RenderHead(ctx context.Context, input *RenderHeadInput) (*RenderHeadOutput, error) {
	records := mappers.ToMetadataList(input.Body.Metadata)

	head, err := h.renderService.RenderHead(ctx, []byte(input.Body.HTML), records)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RenderHeadOutput{
		Body: responses.RenderHeadResponse{
			Head:           string(head),
			AppliedRecords: len(records),
		},
	}, nil
}
