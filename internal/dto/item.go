package dto

// SaveItemRequest creates or replaces an item. IsActive defaults to true when
// omitted on creation.
type SaveItemRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	BrandID  *int64 `json:"brandID"`
	ModelID  *int64 `json:"modelID"`
	IsActive *bool  `json:"isActive"`
}
