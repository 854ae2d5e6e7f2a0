package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post for its owning account.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := &model.PostModel{
		ID:        post.ID,
		AccountID: post.AccountID,
		Content:   post.Content,
	}

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// ListByAccountID returns the posts owned by an account, newest first.
func (repo *postRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by account id")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, &entity.Post{
			ID:        postMs[i].ID,
			AccountID: postMs[i].AccountID,
			Content:   postMs[i].Content,
			CreatedAt: postMs[i].CreatedAt,
		})
	}

	return posts, nil
}

// DeleteByAccountID removes every post owned by an account.
func (repo *postRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.PostModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete posts by account id")
	}

	return nil
}
