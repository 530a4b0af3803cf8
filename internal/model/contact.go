package model

import "time"

// Contact is a person record owned by exactly one user
type Contact struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"` // Optional fields serialize as null
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ContactRequest is used both for creating and for fully replacing a contact
type ContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitnil,max=100"`
	Email     *string `json:"email" validate:"omitnil,max=100,email"`
	Phone     *string `json:"phone" validate:"omitnil,max=20"`
}

// ContactFilters narrows a contact search to the owner's records
type ContactFilters struct {
	Name  *string
	Email *string
	Phone *string
	Page  int
	Size  int
}

// SearchContactRequest carries the query parameters of GET /api/contacts
type SearchContactRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	Page  int    `form:"page" validate:"min=1,max=1000000"`
	Size  int    `form:"size" validate:"min=1,max=100"`
}

// Paging describes the page returned by a search
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}
