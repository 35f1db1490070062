package profile

import (
	"time"

	"portfolio-backend/internal/httpx"
)

type SocialLinks struct {
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
}

// Profile is the home/about singleton. At most one document carries
// is_active=true, enforced by a partial unique index.
type Profile struct {
	ID           string      `bson:"_id,omitempty" json:"id"`
	Name         string      `bson:"name" json:"name"`
	Title        string      `bson:"title" json:"title"`
	Tagline      string      `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Bio          string      `bson:"bio,omitempty" json:"bio,omitempty"`
	Social       SocialLinks `bson:"social" json:"social"`
	Highlights   []string    `bson:"highlights" json:"highlights"`
	ProfileImage string      `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	ResumeURL    string      `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`
	IsActive     bool        `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updatedAt"`
}

type PublicProfile struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Tagline      string      `json:"tagline,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	Social       SocialLinks `json:"social"`
	Highlights   []string    `json:"highlights"`
	ProfileImage string      `json:"profileImage,omitempty"`
	ResumeURL    string      `json:"resumeUrl,omitempty"`
}

func (p Profile) Public(baseURL string) PublicProfile {
	return PublicProfile{
		Name:         p.Name,
		Title:        p.Title,
		Tagline:      p.Tagline,
		Bio:          p.Bio,
		Social:       p.Social,
		Highlights:   p.Highlights,
		ProfileImage: httpx.AbsoluteURL(baseURL, p.ProfileImage),
		ResumeURL:    httpx.AbsoluteURL(baseURL, p.ResumeURL),
	}
}

// UpsertRequest replaces the singleton's fields wholesale on every write.
type UpsertRequest struct {
	Name         string           `json:"name" validate:"required,min=2"`
	Title        string           `json:"title" validate:"required"`
	Tagline      string           `json:"tagline"`
	Bio          string           `json:"bio"`
	Social       SocialLinks      `json:"social"`
	Highlights   httpx.StringList `json:"highlights"`
	ProfileImage string           `json:"profileImage"`
	ResumeURL    string           `json:"resumeUrl"`
}
