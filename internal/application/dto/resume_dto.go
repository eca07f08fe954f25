package dto

import "time"

// CreateResumeRequest entrada para crear un CV.
type CreateResumeRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"omitempty,max=50000"`
	FileURL   string `json:"file_url" validate:"omitempty,url"`
	IsPublic  bool   `json:"is_public"`
	IsPrimary bool   `json:"is_primary"`
}

// UpdateResumeRequest entrada para actualizar un CV (campos opcionales).
type UpdateResumeRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" validate:"omitempty,max=50000"`
	FileURL  *string `json:"file_url" validate:"omitempty,url"`
	IsPublic *bool   `json:"is_public"`
}

// ResumeResponse salida de un CV.
type ResumeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	FileURL   string    `json:"file_url,omitempty"`
	IsPublic  bool      `json:"is_public"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
