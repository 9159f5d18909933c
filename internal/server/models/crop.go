package models

import "time"

// Crop belongs to exactly one user. Area is in hectares.
type Crop struct {
	ID           string
	UserID       string
	Name         string
	Type         string
	PlantingDate time.Time
	Area         float64
	CreatedAt    time.Time
}
