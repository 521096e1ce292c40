package model

type Combo struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageUrl    string    `json:"imageUrl"`
	Items       []string  `json:"items"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   Timestamp `json:"createdAt,omitempty"`
	UpdatedAt   Timestamp `json:"updatedAt,omitempty"`
}

// ComboInput is the create/update payload: a Combo minus its id and the
// server-owned timestamps.
type ComboInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageUrl    string   `json:"imageUrl"`
	Items       []string `json:"items"`
	IsActive    bool     `json:"isActive"`
}
