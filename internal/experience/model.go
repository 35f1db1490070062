package experience

import (
	"time"

	"portfolio-backend/internal/httpx"
)

// Experience stores a typed start date and an optional end date; a nil end
// date means the position is current.
type Experience struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Company      string     `bson:"company" json:"company"`
	Position     string     `bson:"position" json:"position"`
	Location     string     `bson:"location,omitempty" json:"location,omitempty"`
	StartDate    time.Time  `bson:"start_date" json:"startDate"`
	EndDate      *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	Achievements []string   `bson:"achievements" json:"achievements"`
	Technologies []string   `bson:"technologies" json:"technologies"`
	SortOrder    int        `bson:"sort_order" json:"sortOrder"`
	IsActive     bool       `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

type PublicExperience struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Location     string     `json:"location,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements"`
	Technologies []string   `json:"technologies"`
	SortOrder    int        `json:"sortOrder"`
}

func (e Experience) Public() PublicExperience {
	return PublicExperience{
		ID:           e.ID,
		Company:      e.Company,
		Position:     e.Position,
		Location:     e.Location,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		Achievements: e.Achievements,
		Technologies: e.Technologies,
		SortOrder:    e.SortOrder,
	}
}

// Date fields arrive as YYYY-MM-DD strings; an empty endDate means the role
// is ongoing.
type CreateRequest struct {
	Company      string           `json:"company" validate:"required,min=2"`
	Position     string           `json:"position" validate:"required,min=2"`
	Location     string           `json:"location"`
	StartDate    string           `json:"startDate" validate:"required,date"`
	EndDate      string           `json:"endDate" validate:"omitempty,date"`
	Description  string           `json:"description"`
	Achievements httpx.StringList `json:"achievements"`
	Technologies httpx.StringList `json:"technologies"`
	SortOrder    *int             `json:"sortOrder" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Company      *string           `json:"company" validate:"omitempty,min=2"`
	Position     *string           `json:"position" validate:"omitempty,min=2"`
	Location     *string           `json:"location"`
	StartDate    *string           `json:"startDate" validate:"omitempty,date"`
	EndDate      *string           `json:"endDate" validate:"omitempty,date"`
	Description  *string           `json:"description"`
	Achievements *httpx.StringList `json:"achievements"`
	Technologies *httpx.StringList `json:"technologies"`
	SortOrder    *int              `json:"sortOrder" validate:"omitempty,gte=0"`
}
