package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a content record owned by an account. Posts exist to exercise the
// ownership cascade: deleting an account deletes its posts with it.
type Post struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the post.
	AccountID uuid.UUID `json:"account_id"` // The owning account.
	Content   string    `json:"content"`    // The post body.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this post was created.
}
