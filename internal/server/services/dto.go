package services

// Request and response shapes of the JSON API. Field names follow the wire
// format the CLI expects.

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,maxbytes=72"`
	DefaultCity string `json:"defaultCity" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CropRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Type         string  `json:"type" validate:"required,max=50"`
	PlantingDate string  `json:"plantingDate" validate:"required,datetime=2006-01-02"`
	Area         float64 `json:"area" validate:"gt=0"`
}

type Preferences struct {
	DefaultCity string `json:"defaultCity,omitempty"`
}

type UserView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type CropView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PlantingDate string  `json:"plantingDate"`
	Area         float64 `json:"area"`
}

type LoginResult struct {
	Token string
	User  UserView
}
