package contact

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	msgs map[string]ContactMessage
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{msgs: make(map[string]ContactMessage)}
}

func (f *fakeRepository) Create(ctx context.Context, msg ContactMessage) error {
	f.msgs[msg.ID] = msg
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (ContactMessage, error) {
	msg, ok := f.msgs[id]
	if !ok {
		return ContactMessage{}, mongo.ErrNoDocuments
	}
	if v, ok := set["is_read"]; ok {
		msg.IsRead = v.(bool)
	}
	if v, ok := set["is_replied"]; ok {
		msg.IsReplied = v.(bool)
	}
	if v, ok := set["reply"]; ok {
		msg.Reply = v.(string)
	}
	if v, ok := set["replied_at"]; ok {
		at := v.(time.Time)
		msg.RepliedAt = &at
	}
	f.msgs[id] = msg
	return msg, nil
}

func (f *fakeRepository) List(ctx context.Context, limit, offset int64) ([]ContactMessage, error) {
	items := make([]ContactMessage, 0, len(f.msgs))
	for _, msg := range f.msgs {
		items = append(items, msg)
	}
	return items, nil
}

func (f *fakeRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.msgs)), nil
}

func TestSubmitStartsUnreadAndUnreplied(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	msg, err := svc.Submit(context.Background(), CreateRequest{
		Name:    "Al",
		Email:   "al@example.com",
		Subject: "Hello there",
		Message: "I would like to talk about a project.",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if msg.IsRead || msg.IsReplied {
		t.Fatalf("new message must start unread and unreplied, got read=%v replied=%v", msg.IsRead, msg.IsReplied)
	}
	if msg.RepliedAt != nil {
		t.Fatalf("new message must have no replied_at")
	}
	if _, ok := repo.msgs[msg.ID]; !ok {
		t.Fatalf("message was not persisted")
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	msg, err := svc.Submit(context.Background(), CreateRequest{
		Name: "Al", Email: "al@example.com", Subject: "Hello there", Message: "A long enough message.",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	first, err := svc.MarkRead(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if !first.IsRead {
		t.Fatalf("expected is_read true after mark-read")
	}

	second, err := svc.MarkRead(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("second MarkRead error: %v", err)
	}
	if !second.IsRead || second.IsReplied {
		t.Fatalf("second mark-read changed state: %+v", second)
	}
}

func TestReplyForcesReadAndTimestamps(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	msg, err := svc.Submit(context.Background(), CreateRequest{
		Name: "Al", Email: "al@example.com", Subject: "Hello there", Message: "A long enough message.",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	replied, err := svc.Reply(context.Background(), msg.ID, "Thanks, let's talk.")
	if err != nil {
		t.Fatalf("Reply error: %v", err)
	}
	if !replied.IsReplied {
		t.Fatalf("expected is_replied true")
	}
	if !replied.IsRead {
		t.Fatalf("reply must force is_read true")
	}
	if replied.RepliedAt == nil {
		t.Fatalf("expected replied_at to be set")
	}
	if replied.Reply != "Thanks, let's talk." {
		t.Fatalf("unexpected reply text: %q", replied.Reply)
	}
}

func TestReplyUnknownMessage(t *testing.T) {
	svc := NewService(newFakeRepository())

	if _, err := svc.Reply(context.Background(), "missing", "text"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
