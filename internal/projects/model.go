package projects

import (
	"time"

	"portfolio-backend/internal/httpx"
)

type Project struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Problem     string    `bson:"problem,omitempty" json:"problem,omitempty"`
	TechStack   []string  `bson:"tech_stack" json:"techStack"`
	Role        string    `bson:"role,omitempty" json:"role,omitempty"`
	Challenges  string    `bson:"challenges,omitempty" json:"challenges,omitempty"`
	Results     string    `bson:"results,omitempty" json:"results,omitempty"`
	LiveURL     string    `bson:"live_url,omitempty" json:"liveUrl,omitempty"`
	RepoURL     string    `bson:"repo_url,omitempty" json:"repoUrl,omitempty"`
	ImageURL    string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	SortOrder   int       `bson:"sort_order" json:"sortOrder"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// PublicProject is the project shape served to visitors; the soft-delete flag
// never appears here.
type PublicProject struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Problem     string    `json:"problem,omitempty"`
	TechStack   []string  `json:"techStack"`
	Role        string    `json:"role,omitempty"`
	Challenges  string    `json:"challenges,omitempty"`
	Results     string    `json:"results,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	RepoURL     string    `json:"repoUrl,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p Project) Public(baseURL string) PublicProject {
	return PublicProject{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Problem:     p.Problem,
		TechStack:   p.TechStack,
		Role:        p.Role,
		Challenges:  p.Challenges,
		Results:     p.Results,
		LiveURL:     p.LiveURL,
		RepoURL:     p.RepoURL,
		ImageURL:    httpx.AbsoluteURL(baseURL, p.ImageURL),
		Featured:    p.Featured,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
	}
}

type CreateRequest struct {
	Title       string           `json:"title" validate:"required,min=2"`
	Description string           `json:"description" validate:"required,min=10"`
	Problem     string           `json:"problem"`
	TechStack   httpx.StringList `json:"techStack" validate:"required,min=1"`
	Role        string           `json:"role"`
	Challenges  string           `json:"challenges"`
	Results     string           `json:"results"`
	LiveURL     string           `json:"liveUrl" validate:"omitempty,url"`
	RepoURL     string           `json:"repoUrl" validate:"omitempty,url"`
	ImageURL    string           `json:"imageUrl"`
	Featured    *bool            `json:"featured"`
	SortOrder   *int             `json:"sortOrder" validate:"omitempty,gte=0"`
}

// UpdateRequest carries only the fields the admin submitted; nil means leave
// the stored value alone.
type UpdateRequest struct {
	Title       *string           `json:"title" validate:"omitempty,min=2"`
	Description *string           `json:"description" validate:"omitempty,min=10"`
	Problem     *string           `json:"problem"`
	TechStack   *httpx.StringList `json:"techStack"`
	Role        *string           `json:"role"`
	Challenges  *string           `json:"challenges"`
	Results     *string           `json:"results"`
	LiveURL     *string           `json:"liveUrl" validate:"omitempty,url"`
	RepoURL     *string           `json:"repoUrl" validate:"omitempty,url"`
	ImageURL    *string           `json:"imageUrl"`
	Featured    *bool             `json:"featured"`
	SortOrder   *int              `json:"sortOrder" validate:"omitempty,gte=0"`
}
