package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/access"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(postRepo repository.PostRepository, logger *slog.Logger) usecase.PostUsecase {
	return &postService{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost creates a post owned by the acting identity.
func (srv *postService) CreatePost(ctx context.Context, acting *entity.Identity, input *usecase.CreatePostInput) (*entity.Post, error) {
	if !access.IsAuthenticated(acting) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "authentication required")
	}
	if input.Content == "" {
		return nil, domainerrors.NewValidationError(entity.FieldErrors{
			{Field: "content", Message: "is required"},
		})
	}

	post := &entity.Post{
		AccountID: acting.ID,
		Content:   input.Content,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Any("accountID", acting.ID), slog.Any("postID", post.ID))

	return post, nil
}

// ListPosts returns the posts owned by an account for an authenticated viewer.
func (srv *postService) ListPosts(ctx context.Context, acting *entity.Identity, accountID uuid.UUID) ([]*entity.Post, error) {
	if !access.IsAuthenticated(acting) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "authentication required")
	}

	posts, err := srv.postRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}
