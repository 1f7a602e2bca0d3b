package dto

// SaveSiteRequest creates or replaces a site. IsActive defaults to true when
// omitted on creation.
type SaveSiteRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Type     string `json:"type" binding:"required"`
	IsActive *bool  `json:"isActive"`
}
