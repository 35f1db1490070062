package projects

import (
	"context"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	items map[string]Project
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]Project)}
}

func (f *fakeRepository) Create(ctx context.Context, item Project) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (Project, error) {
	item, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (Project, error) {
	item, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	if v, ok := set["title"]; ok {
		item.Title = v.(string)
	}
	if v, ok := set["description"]; ok {
		item.Description = v.(string)
	}
	if v, ok := set["featured"]; ok {
		item.Featured = v.(bool)
	}
	if v, ok := set["sort_order"]; ok {
		item.SortOrder = v.(int)
	}
	if v, ok := set["is_active"]; ok {
		item.IsActive = v.(bool)
	}
	f.items[id] = item
	return item, nil
}

// ListPublic mirrors the collection's contract: active only, sort_order
// ascending with newest-created first on ties.
func (f *fakeRepository) ListPublic(ctx context.Context, featuredOnly bool) ([]Project, error) {
	items := make([]Project, 0, len(f.items))
	for _, item := range f.items {
		if !item.IsActive {
			continue
		}
		if featuredOnly && !item.Featured {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (f *fakeRepository) ListAdmin(ctx context.Context) ([]Project, error) {
	items := make([]Project, 0, len(f.items))
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

func TestCreateDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Portfolio API",
		Description: "Backend for my portfolio site.",
		TechStack:   []string{" Go ", "MongoDB", ""},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !item.IsActive {
		t.Fatalf("new project must be active")
	}
	if item.Featured {
		t.Fatalf("featured must default to false")
	}
	if item.SortOrder != 0 {
		t.Fatalf("sort order must default to 0, got %d", item.SortOrder)
	}
	if len(item.TechStack) != 2 || item.TechStack[0] != "Go" {
		t.Fatalf("tech stack not trimmed: %v", item.TechStack)
	}
}

func TestUpdateOnlyTouchesSubmittedFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Portfolio API",
		Description: "Backend for my portfolio site.",
		TechStack:   []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	newTitle := "Portfolio API v2"
	updated, err := svc.Update(context.Background(), item.ID, UpdateRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Description != item.Description {
		t.Fatalf("description must not change on partial update")
	}
}

func TestUpdateUnknownProject(t *testing.T) {
	svc := NewService(newFakeRepository())

	title := "Nope"
	if _, err := svc.Update(context.Background(), "missing", UpdateRequest{Title: &title}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Portfolio API",
		Description: "Backend for my portfolio site.",
		TechStack:   []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.SoftDelete(context.Background(), item.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}
	if repo.items[item.ID].IsActive {
		t.Fatalf("project still active after soft delete")
	}

	// Deleting again still succeeds and leaves state unchanged.
	if err := svc.SoftDelete(context.Background(), item.ID); err != nil {
		t.Fatalf("second SoftDelete error: %v", err)
	}
	if repo.items[item.ID].IsActive {
		t.Fatalf("second soft delete changed state")
	}
}

func TestPublicViewsHideInactiveProjects(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	active, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Active project",
		Description: "Still on the site.",
		TechStack:   []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	deleted, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Old project",
		Description: "Removed from the site.",
		TechStack:   []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.SoftDelete(context.Background(), deleted.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}

	listed, err := svc.ListPublic(context.Background(), false)
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != active.ID {
		t.Fatalf("public list must contain only the active project: %v", listed)
	}

	if _, err := svc.GetPublicByID(context.Background(), deleted.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for inactive project, got %v", err)
	}

	admin, err := svc.ListAdmin(context.Background())
	if err != nil {
		t.Fatalf("ListAdmin error: %v", err)
	}
	if len(admin) != 2 {
		t.Fatalf("admin list must include inactive projects, got %d", len(admin))
	}
}

func TestPublicListSortOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []struct {
		id        string
		sortOrder int
		createdAt time.Time
	}{
		{"p-a", 2, base},
		{"p-b", 1, base.Add(time.Hour)},
		{"p-c", 1, base.Add(2 * time.Hour)},
	}
	for _, s := range seed {
		repo.items[s.id] = Project{
			ID:        s.id,
			Title:     s.id,
			SortOrder: s.sortOrder,
			IsActive:  true,
			CreatedAt: s.createdAt,
		}
	}

	listed, err := svc.ListPublic(context.Background(), false)
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(listed))
	}
	// order ascending, ties broken newest-created first
	if listed[0].ID != "p-c" || listed[1].ID != "p-b" || listed[2].ID != "p-a" {
		t.Fatalf("unexpected order: %s, %s, %s", listed[0].ID, listed[1].ID, listed[2].ID)
	}
}

func TestPublicProjectionStripsActiveFlag(t *testing.T) {
	item := Project{
		ID:       "p-1",
		Title:    "Portfolio API",
		ImageURL: "/uploads/cover.png",
		IsActive: true,
	}

	pub := item.Public("https://api.example.com")
	if pub.ImageURL != "https://api.example.com/uploads/cover.png" {
		t.Fatalf("image url not absolutized: %q", pub.ImageURL)
	}
}
