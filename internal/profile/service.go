package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("profile not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetActive(ctx context.Context) (Profile, error) {
	item, err := s.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return item, nil
}

func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (Profile, error) {
	now := time.Now().UTC()

	set := bson.M{
		"name":          strings.TrimSpace(req.Name),
		"title":         strings.TrimSpace(req.Title),
		"tagline":       strings.TrimSpace(req.Tagline),
		"bio":           strings.TrimSpace(req.Bio),
		"social":        trimSocial(req.Social),
		"highlights":    trimAll(req.Highlights),
		"profile_image": strings.TrimSpace(req.ProfileImage),
		"resume_url":    strings.TrimSpace(req.ResumeURL),
		"updated_at":    now,
	}
	setOnInsert := bson.M{
		"_id":        primitive.NewObjectID().Hex(),
		"is_active":  true,
		"created_at": now,
	}

	return s.repo.Upsert(ctx, set, setOnInsert)
}

func trimSocial(social SocialLinks) SocialLinks {
	return SocialLinks{
		GitHub:   strings.TrimSpace(social.GitHub),
		LinkedIn: strings.TrimSpace(social.LinkedIn),
		Twitter:  strings.TrimSpace(social.Twitter),
		Website:  strings.TrimSpace(social.Website),
	}
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
