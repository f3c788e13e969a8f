package model

import "time"

// Category groups products for browsing.
type Category struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}
