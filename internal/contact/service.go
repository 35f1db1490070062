package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("contact message not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, req CreateRequest) (ContactMessage, error) {
	msg := ContactMessage{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		IsRead:    false,
		IsReplied: false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return ContactMessage{}, err
	}
	return msg, nil
}

func (s *Service) List(ctx context.Context, limit, offset int64) ([]ContactMessage, int64, error) {
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// MarkRead is idempotent: marking an already-read message succeeds and leaves
// it read.
func (s *Service) MarkRead(ctx context.Context, id string) (ContactMessage, error) {
	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), bson.M{"is_read": true})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ContactMessage{}, ErrNotFound
		}
		return ContactMessage{}, err
	}
	return updated, nil
}

// Reply records the reply text and forces the read flag in the same update,
// so a replied message can never be unread.
func (s *Service) Reply(ctx context.Context, id, reply string) (ContactMessage, error) {
	now := time.Now().UTC()
	set := bson.M{
		"reply":      strings.TrimSpace(reply),
		"is_replied": true,
		"is_read":    true,
		"replied_at": now,
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ContactMessage{}, ErrNotFound
		}
		return ContactMessage{}, err
	}
	return updated, nil
}
