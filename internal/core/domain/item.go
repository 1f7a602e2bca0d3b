package domain

// Brand is a name-unique lookup entry items may reference.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Model is a name-unique lookup entry items may reference.
type Model struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item is a stock-keeping unit tracked across sites.
type Item struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	BrandID  *int64 `json:"brandID,omitempty"`
	ModelID  *int64 `json:"modelID,omitempty"`
	IsActive bool   `json:"isActive"`

	// Joined display fields, populated on list queries only.
	BrandName string `json:"brandName,omitempty"`
	ModelName string `json:"modelName,omitempty"`
}
