package contact

import "time"

// ContactMessage is append-only: nothing ever deletes one, the only
// mutations are the read and reply flips. Replied always implies read.
type ContactMessage struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Email     string     `bson:"email" json:"email"`
	Subject   string     `bson:"subject" json:"subject"`
	Message   string     `bson:"message" json:"message"`
	IsRead    bool       `bson:"is_read" json:"isRead"`
	IsReplied bool       `bson:"is_replied" json:"isReplied"`
	Reply     string     `bson:"reply,omitempty" json:"reply,omitempty"`
	RepliedAt *time.Time `bson:"replied_at,omitempty" json:"repliedAt,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}

type CreateRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,min=1"`
}
