// ABOUTME: Response DTOs for the render endpoints
// ABOUTME: Carries the reconciled document or head fragment back to the client

package responses

// RenderPageResponse holds a full reconciled document
type RenderPageResponse struct {
	HTML string `json:"html" doc:"Reconciled HTML document"`

	// AppliedRecords is the number of metadata records applied in order
	AppliedRecords int `json:"appliedRecords" doc:"Number of metadata records applied"`
}

// RenderHeadResponse holds just the reconciled head element
type RenderHeadResponse struct {
	Head string `json:"head" doc:"Reconciled head element"`

	// AppliedRecords is the number of metadata records applied in order
	AppliedRecords int `json:"appliedRecords" doc:"Number of metadata records applied"`
}
