package skills

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound           = errors.New("skill not found")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidProficiency = errors.New("invalid proficiency")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Skill, error) {
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if !IsValidCategory(category) {
		return Skill{}, ErrInvalidCategory
	}
	proficiency := strings.ToLower(strings.TrimSpace(req.Proficiency))
	if !IsValidProficiency(proficiency) {
		return Skill{}, ErrInvalidProficiency
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	now := time.Now().UTC()
	item := Skill{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Category:    category,
		Proficiency: proficiency,
		Level:       req.Level,
		Years:       req.Years,
		SortOrder:   sortOrder,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Skill{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Skill, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*req.Category))
		if !IsValidCategory(category) {
			return Skill{}, ErrInvalidCategory
		}
		set["category"] = category
	}
	if req.Proficiency != nil {
		proficiency := strings.ToLower(strings.TrimSpace(*req.Proficiency))
		if !IsValidProficiency(proficiency) {
			return Skill{}, ErrInvalidProficiency
		}
		set["proficiency"] = proficiency
	}
	if req.Level != nil {
		set["level"] = *req.Level
	}
	if req.Years != nil {
		set["years"] = *req.Years
	}
	if req.SortOrder != nil {
		set["sort_order"] = *req.SortOrder
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Skill{}, ErrNotFound
		}
		return Skill{}, err
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

// ListPublicGrouped returns active skills keyed by category, each group in
// sort_order. The repository sorts category then sort_order, so appending in
// cursor order keeps groups ordered.
func (s *Service) ListPublicGrouped(ctx context.Context) (map[string][]PublicSkill, error) {
	items, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]PublicSkill)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item.Public())
	}
	return grouped, nil
}

func (s *Service) ListAdmin(ctx context.Context) ([]Skill, error) {
	return s.repo.ListAdmin(ctx)
}

func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}
