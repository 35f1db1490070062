package experience

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("experience not found")

const dateLayout = "2006-01-02"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Experience, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return Experience{}, err
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return Experience{}, err
		}
		endDate = &parsed
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	now := time.Now().UTC()
	item := Experience{
		ID:           primitive.NewObjectID().Hex(),
		Company:      strings.TrimSpace(req.Company),
		Position:     strings.TrimSpace(req.Position),
		Location:     strings.TrimSpace(req.Location),
		StartDate:    startDate,
		EndDate:      endDate,
		Description:  strings.TrimSpace(req.Description),
		Achievements: trimAll(req.Achievements),
		Technologies: trimAll(req.Technologies),
		SortOrder:    sortOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Experience{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Experience, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Company != nil {
		set["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Position != nil {
		set["position"] = strings.TrimSpace(*req.Position)
	}
	if req.Location != nil {
		set["location"] = strings.TrimSpace(*req.Location)
	}
	if req.StartDate != nil {
		parsed, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return Experience{}, err
		}
		set["start_date"] = parsed
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			// Submitting an empty end date marks the role as current again.
			set["end_date"] = nil
		} else {
			parsed, err := time.Parse(dateLayout, *req.EndDate)
			if err != nil {
				return Experience{}, err
			}
			set["end_date"] = parsed
		}
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Achievements != nil {
		set["achievements"] = trimAll(*req.Achievements)
	}
	if req.Technologies != nil {
		set["technologies"] = trimAll(*req.Technologies)
	}
	if req.SortOrder != nil {
		set["sort_order"] = *req.SortOrder
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Experience{}, ErrNotFound
		}
		return Experience{}, err
	}
	return updated, nil
}

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

func (s *Service) ListPublic(ctx context.Context) ([]Experience, error) {
	return s.repo.ListPublic(ctx)
}

func (s *Service) ListAdmin(ctx context.Context) ([]Experience, error) {
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
