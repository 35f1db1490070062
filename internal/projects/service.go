package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("project not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Project, error) {
	now := time.Now().UTC()
	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	item := Project{
		ID:          primitive.NewObjectID().Hex(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Problem:     strings.TrimSpace(req.Problem),
		TechStack:   trimAll(req.TechStack),
		Role:        strings.TrimSpace(req.Role),
		Challenges:  strings.TrimSpace(req.Challenges),
		Results:     strings.TrimSpace(req.Results),
		LiveURL:     strings.TrimSpace(req.LiveURL),
		RepoURL:     strings.TrimSpace(req.RepoURL),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Featured:    featured,
		SortOrder:   sortOrder,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Project{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Project, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Problem != nil {
		set["problem"] = strings.TrimSpace(*req.Problem)
	}
	if req.TechStack != nil {
		set["tech_stack"] = trimAll(*req.TechStack)
	}
	if req.Role != nil {
		set["role"] = strings.TrimSpace(*req.Role)
	}
	if req.Challenges != nil {
		set["challenges"] = strings.TrimSpace(*req.Challenges)
	}
	if req.Results != nil {
		set["results"] = strings.TrimSpace(*req.Results)
	}
	if req.LiveURL != nil {
		set["live_url"] = strings.TrimSpace(*req.LiveURL)
	}
	if req.RepoURL != nil {
		set["repo_url"] = strings.TrimSpace(*req.RepoURL)
	}
	if req.ImageURL != nil {
		set["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}
	if req.SortOrder != nil {
		set["sort_order"] = *req.SortOrder
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return updated, nil
}

// SoftDelete flips is_active off. Deleting an already-inactive project is a
// no-op that still succeeds.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	set := bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}
	if _, err := s.repo.Update(ctx, strings.TrimSpace(id), set); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListPublic(ctx context.Context, featuredOnly bool) ([]Project, error) {
	return s.repo.ListPublic(ctx, featuredOnly)
}

func (s *Service) GetPublicByID(ctx context.Context, id string) (Project, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	if !item.IsActive {
		return Project{}, ErrNotFound
	}
	return item, nil
}

func (s *Service) ListAdmin(ctx context.Context) ([]Project, error) {
	return s.repo.ListAdmin(ctx)
}

func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
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
