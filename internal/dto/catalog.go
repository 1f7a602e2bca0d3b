package dto

// SaveBrandRequest creates or renames a brand.
type SaveBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

// SaveModelRequest creates or renames a model.
type SaveModelRequest struct {
	Name string `json:"name" binding:"required"`
}
