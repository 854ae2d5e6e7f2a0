package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Content string `json:"content"`
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// CreatePost creates a post owned by the acting identity.
	CreatePost(ctx context.Context, acting *entity.Identity, input *CreatePostInput) (*entity.Post, error)

	// ListPosts returns the posts owned by an account.
	ListPosts(ctx context.Context, acting *entity.Identity, accountID uuid.UUID) ([]*entity.Post, error)
}
