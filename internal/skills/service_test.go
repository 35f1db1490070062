package skills

import (
	"context"
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	items map[string]Skill
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]Skill)}
}

func (f *fakeRepository) Create(ctx context.Context, item Skill) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (Skill, error) {
	item, ok := f.items[id]
	if !ok {
		return Skill{}, mongo.ErrNoDocuments
	}
	if v, ok := set["name"]; ok {
		item.Name = v.(string)
	}
	if v, ok := set["category"]; ok {
		item.Category = v.(string)
	}
	if v, ok := set["proficiency"]; ok {
		item.Proficiency = v.(string)
	}
	if v, ok := set["is_active"]; ok {
		item.IsActive = v.(bool)
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepository) ListPublic(ctx context.Context) ([]Skill, error) {
	items := make([]Skill, 0, len(f.items))
	for _, item := range f.items {
		if item.IsActive {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].SortOrder < items[j].SortOrder
	})
	return items, nil
}

func (f *fakeRepository) ListAdmin(ctx context.Context) ([]Skill, error) {
	items := make([]Skill, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	for _, item := range f.items {
		if item.IsActive {
			n++
		}
	}
	return n, nil
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateRequest{
		Name:        "Go",
		Category:    "wizardry",
		Proficiency: ProficiencyExpert,
	})
	if err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCreateRejectsUnknownProficiency(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateRequest{
		Name:        "Go",
		Category:    CategoryBackend,
		Proficiency: "grandmaster",
	})
	if err != ErrInvalidProficiency {
		t.Fatalf("expected ErrInvalidProficiency, got %v", err)
	}
}

func TestCreateNormalizesEnumCase(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:        "Go",
		Category:    " Backend ",
		Proficiency: "EXPERT",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Category != CategoryBackend || item.Proficiency != ProficiencyExpert {
		t.Fatalf("enum values not normalized: %q %q", item.Category, item.Proficiency)
	}
}

func TestListPublicGrouped(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	seed := []struct {
		name, category string
		sortOrder      int
		active         bool
	}{
		{"Go", CategoryBackend, 0, true},
		{"PostgreSQL", CategoryDatabase, 0, true},
		{"MongoDB", CategoryDatabase, 1, true},
		{"jQuery", CategoryFrontend, 0, false},
	}
	for _, s := range seed {
		repo.items[s.name] = Skill{
			ID:          s.name,
			Name:        s.name,
			Category:    s.category,
			Proficiency: ProficiencyAdvanced,
			SortOrder:   s.sortOrder,
			IsActive:    s.active,
		}
	}

	grouped, err := svc.ListPublicGrouped(context.Background())
	if err != nil {
		t.Fatalf("ListPublicGrouped error: %v", err)
	}
	if len(grouped) != 2 {
		t.Fatalf("expected 2 categories, got %d: %v", len(grouped), grouped)
	}
	if _, ok := grouped[CategoryFrontend]; ok {
		t.Fatalf("inactive skill leaked into public grouping")
	}
	dbSkills := grouped[CategoryDatabase]
	if len(dbSkills) != 2 || dbSkills[0].Name != "PostgreSQL" || dbSkills[1].Name != "MongoDB" {
		t.Fatalf("database group out of order: %v", dbSkills)
	}
}

func TestSoftDeleteHidesSkill(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:        "Go",
		Category:    CategoryBackend,
		Proficiency: ProficiencyExpert,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.SoftDelete(context.Background(), item.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}

	grouped, err := svc.ListPublicGrouped(context.Background())
	if err != nil {
		t.Fatalf("ListPublicGrouped error: %v", err)
	}
	if len(grouped) != 0 {
		t.Fatalf("soft-deleted skill still public: %v", grouped)
	}

	count, err := svc.CountActive(context.Background())
	if err != nil {
		t.Fatalf("CountActive error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 active skills, got %d", count)
	}
}
