package model

import "time"

// Panelist is a moderator or panel member shown on the panelists page.
type Panelist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	// ImageKey is the storage key of an uploaded photo; empty for external URLs.
	ImageKey  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
