package entity

import "time"

// Resume CV de un usuario. A lo sumo un CV por usuario tiene IsPrimary = true.
type Resume struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	FileURL   string
	IsPublic  bool
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
