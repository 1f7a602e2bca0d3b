package domain

// Site is a physical or logical stock location (a warehouse/godown or a job
// site). Its identity is immutable once a movement references it.
type Site struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Type     string `json:"type"` // free-form category, e.g. "Warehouse" or "Site"
	IsActive bool   `json:"isActive"`
}
