package resource

// CreateResourceDTO is the request body for creating a resource.
type CreateResourceDTO struct {
	Title         string `json:"title"   binding:"required"`
	Description   string `json:"description"`
	FileURL       string `json:"fileUrl" binding:"required"`
	FileType      string `json:"fileType"`
	Category      string `json:"category"`
	IsActive      *bool  `json:"isActive"`
	SortOrder     *int   `json:"order"`
	RequiresEmail *bool  `json:"requiresEmail"`
	GHLFunnelURL  string `json:"ghlFunnelUrl"`
}

// UpdateResourceDTO is the request body for updating a resource (all fields
// optional).
type UpdateResourceDTO struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	FileURL       *string `json:"fileUrl"`
	FileType      *string `json:"fileType"`
	Category      *string `json:"category"`
	IsActive      *bool   `json:"isActive"`
	SortOrder     *int    `json:"order"`
	RequiresEmail *bool   `json:"requiresEmail"`
	GHLFunnelURL  *string `json:"ghlFunnelUrl"`
}

// downloadResponse is returned by the download endpoint so the client can
// either open the file directly or route through the lead-capture funnel.
type downloadResponse struct {
	FileURL       string `json:"fileUrl"`
	RequiresEmail bool   `json:"requiresEmail"`
	GHLFunnelURL  string `json:"ghlFunnelUrl,omitempty"`
}
