package models

import (
	"math"
	"time"
)

// DateLayout is the wire format of planting dates.
const DateLayout = "2006-01-02"

// Crop is a planting record owned by the logged-in user. Area is in hectares.
type Crop struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PlantingDate string  `json:"plantingDate"`
	Area         float64 `json:"area"`
}

// DaysSincePlanting counts whole calendar days between the planting date and
// now. ok is false when the stored date cannot be parsed.
func (c Crop) DaysSincePlanting(now time.Time) (days int, ok bool) {
	planted, err := time.ParseInLocation(DateLayout, c.PlantingDate, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(today.Sub(planted).Hours() / 24)), true
}

type CropRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Type         string  `json:"type" validate:"required,max=50"`
	PlantingDate string  `json:"plantingDate" validate:"required,datetime=2006-01-02"`
	Area         float64 `json:"area" validate:"gt=0"`
}
