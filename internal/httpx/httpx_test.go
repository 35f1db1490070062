package httpx

import (
	"net/url"
	"strings"
	"testing"

	"portfolio-backend/internal/validation"
)

func TestAbsoluteURL(t *testing.T) {
	base := "https://api.example.com"

	if got := AbsoluteURL(base, "/uploads/me.png"); got != "https://api.example.com/uploads/me.png" {
		t.Fatalf("unexpected url: %q", got)
	}
	if got := AbsoluteURL(base, "uploads/me.png"); got != "https://api.example.com/uploads/me.png" {
		t.Fatalf("unexpected url: %q", got)
	}
	if got := AbsoluteURL(base, "https://cdn.example.com/me.png"); got != "https://cdn.example.com/me.png" {
		t.Fatalf("absolute urls must pass through, got %q", got)
	}
	if got := AbsoluteURL(base, ""); got != "" {
		t.Fatalf("empty path must stay empty, got %q", got)
	}
}

func TestFieldErrorsListsEveryFailingField(t *testing.T) {
	type contactForm struct {
		Name    string `json:"name" validate:"required,min=2"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject" validate:"required,min=5"`
		Message string `json:"message" validate:"required,min=10"`
	}

	val := validation.New()
	err := val.Struct(contactForm{Name: "A", Email: "not-an-email", Subject: "hi", Message: "short"})
	if err == nil {
		t.Fatalf("expected validation to fail")
	}

	errs := FieldErrors(val.ValidationErrors(err))
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}

	byField := make(map[string]string, len(errs))
	for _, fe := range errs {
		byField[fe.Field] = fe.Message
	}
	for _, field := range []string{"name", "email", "subject", "message"} {
		if byField[field] == "" {
			t.Fatalf("missing field error for %q: %v", field, byField)
		}
	}
	if !strings.Contains(byField["name"], "at least 2") {
		t.Fatalf("unexpected name message: %q", byField["name"])
	}
}

func TestParseLimitOffset(t *testing.T) {
	values := url.Values{}
	limit, offset, err := ParseLimitOffset(values, 50, 200)
	if err != nil {
		t.Fatalf("ParseLimitOffset error: %v", err)
	}
	if limit != 50 || offset != 0 {
		t.Fatalf("unexpected defaults: limit=%d offset=%d", limit, offset)
	}

	values.Set("limit", "500")
	values.Set("offset", "10")
	limit, offset, err = ParseLimitOffset(values, 50, 200)
	if err != nil {
		t.Fatalf("ParseLimitOffset error: %v", err)
	}
	if limit != 200 || offset != 10 {
		t.Fatalf("expected clamp to 200/10, got %d/%d", limit, offset)
	}

	values.Set("limit", "-1")
	if _, _, err := ParseLimitOffset(values, 50, 200); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}
