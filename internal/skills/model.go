package skills

import "time"

const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevops   = "devops"
	CategoryMobile   = "mobile"
	CategoryTools    = "tools"
	CategoryOther    = "other"

	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

var validCategories = map[string]struct{}{
	CategoryFrontend: {},
	CategoryBackend:  {},
	CategoryDatabase: {},
	CategoryDevops:   {},
	CategoryMobile:   {},
	CategoryTools:    {},
	CategoryOther:    {},
}

var validProficiencies = map[string]struct{}{
	ProficiencyBeginner:     {},
	ProficiencyIntermediate: {},
	ProficiencyAdvanced:     {},
	ProficiencyExpert:       {},
}

func IsValidCategory(value string) bool {
	_, ok := validCategories[value]
	return ok
}

func IsValidProficiency(value string) bool {
	_, ok := validProficiencies[value]
	return ok
}

type Skill struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Proficiency string    `bson:"proficiency" json:"proficiency"`
	Level       *int      `bson:"level,omitempty" json:"level,omitempty"`
	Years       *float64  `bson:"years,omitempty" json:"years,omitempty"`
	SortOrder   int       `bson:"sort_order" json:"sortOrder"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

type PublicSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Proficiency string   `json:"proficiency"`
	Level       *int     `json:"level,omitempty"`
	Years       *float64 `json:"years,omitempty"`
	SortOrder   int      `json:"sortOrder"`
}

func (s Skill) Public() PublicSkill {
	return PublicSkill{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Level:       s.Level,
		Years:       s.Years,
		SortOrder:   s.SortOrder,
	}
}

// Category and proficiency are checked against the vocabulary maps in the
// service after lowercasing, so "Frontend" and "frontend" are the same value.
type CreateRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Category    string   `json:"category" validate:"required"`
	Proficiency string   `json:"proficiency" validate:"required"`
	Level       *int     `json:"level" validate:"omitempty,gte=0,lte=100"`
	Years       *float64 `json:"years" validate:"omitempty,gte=0"`
	SortOrder   *int     `json:"sortOrder" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Proficiency *string  `json:"proficiency" validate:"omitempty,min=1"`
	Level       *int     `json:"level" validate:"omitempty,gte=0,lte=100"`
	Years       *float64 `json:"years" validate:"omitempty,gte=0"`
	SortOrder   *int     `json:"sortOrder" validate:"omitempty,gte=0"`
}
