package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"portfolio-backend/internal/transport"

	"github.com/go-playground/validator/v10"
)

func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// FieldErrors translates validator failures into the API error shape, one
// entry per failing field, so callers see the complete list in one response.
func FieldErrors(errs validator.ValidationErrors) []transport.FieldError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]transport.FieldError, 0, len(errs))
	for _, err := range errs {
		out = append(out, transport.FieldError{
			Field:   err.Field(),
			Message: fieldMessage(err),
		})
	}
	return out
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", err.Field())
	case "min":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), strings.Join(strings.Fields(err.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", err.Field())
	case "date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

// AbsoluteURL joins a relative asset path onto the configured public base
// URL. Absolute URLs pass through untouched.
func AbsoluteURL(base, path string) string {
	if path == "" || base == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func ParseLimitOffset(values url.Values, defaultLimit, maxLimit int64) (int64, int64, error) {
	limit := defaultLimit
	offset := int64(0)

	rawLimit := strings.TrimSpace(values.Get("limit"))
	if rawLimit != "" {
		parsed, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid limit")
		}
		limit = parsed
	}

	rawOffset := strings.TrimSpace(values.Get("offset"))
	if rawOffset != "" {
		parsed, err := strconv.ParseInt(rawOffset, 10, 64)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("invalid offset")
		}
		offset = parsed
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return limit, offset, nil
}
