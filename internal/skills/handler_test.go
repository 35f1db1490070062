package skills

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/validation"
)

func newTestHandler(repo *fakeRepository) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewService(repo), validation.New(), logger)
}

func TestAdminCreateAcceptsMixedCaseEnums(t *testing.T) {
	repo := newFakeRepository()
	h := newTestHandler(repo)

	body := `{"name":"React","category":"Frontend","proficiency":"Expert"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/skills", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.AdminCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Skill Skill `json:"skill"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode error: %v", err)
	}
	if resp.Skill.Category != CategoryFrontend || resp.Skill.Proficiency != ProficiencyExpert {
		t.Fatalf("enums not normalized over HTTP: %q %q", resp.Skill.Category, resp.Skill.Proficiency)
	}

	stored, ok := repo.items[resp.Skill.ID]
	if !ok {
		t.Fatal("created skill not stored")
	}
	if stored.Category != CategoryFrontend || stored.Proficiency != ProficiencyExpert {
		t.Fatalf("stored enums not normalized: %q %q", stored.Category, stored.Proficiency)
	}
}

func TestAdminCreateRejectsUnknownCategoryOverHTTP(t *testing.T) {
	h := newTestHandler(newFakeRepository())

	body := `{"name":"Go","category":"wizardry","proficiency":"expert"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/skills", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.AdminCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "invalid category") {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}
