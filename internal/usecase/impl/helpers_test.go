package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memAccountRepo is an in-memory AccountRepository used as the test double.
type memAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *memAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	clone := *account

	return &clone, nil
}

func (r *memAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			clone := *account

			return &clone, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	clone := *account
	r.accounts[account.ID] = &clone

	return nil
}

func (r *memAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}

	clone := *account
	r.accounts[account.ID] = &clone

	return nil
}

func (r *memAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.accounts, id)

	return nil
}

func (r *memAccountRepo) List(ctx context.Context, offset, limit int) ([]*entity.Account, int64, error) {
	all := make([]*entity.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		clone := *account
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], total, nil
}

// memPostRepo is an in-memory PostRepository used as the test double.
type memPostRepo struct {
	posts map[uuid.UUID]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*entity.Post)}
}

func (r *memPostRepo) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	clone := *post
	r.posts[post.ID] = &clone

	return nil
}

func (r *memPostRepo) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Post, error) {
	var owned []*entity.Post
	for _, post := range r.posts {
		if post.AccountID == accountID {
			clone := *post
			owned = append(owned, &clone)
		}
	}

	return owned, nil
}

func (r *memPostRepo) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	for id, post := range r.posts {
		if post.AccountID == accountID {
			delete(r.posts, id)
		}
	}

	return nil
}

// memTxManager executes the transactional function directly against the
// in-memory repositories. Rollback semantics are not simulated; tests assert
// on returned errors instead.
type memTxManager struct {
	accountRepo *memAccountRepo
	postRepo    *memPostRepo
}

func (m *memTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) AccountRepo() repository.AccountRepository { return m.accountRepo }
func (m *memTxManager) PostRepo() repository.PostRepository       { return m.postRepo }

// plainTokenCodec encodes a session token as "accountID|salt" so tests can
// inspect it without JWT machinery.
type plainTokenCodec struct{}

func (plainTokenCodec) Encode(token service.SessionToken) (string, error) {
	return token.AccountID.String() + "|" + token.Salt, nil
}

func (plainTokenCodec) Decode(value string) (service.SessionToken, error) {
	parts := strings.SplitN(value, "|", 2)
	if len(parts) != 2 {
		return service.SessionToken{}, errors.New("malformed token")
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return service.SessionToken{}, errors.Wrap(err, "malformed account id")
	}

	return service.SessionToken{AccountID: id, Salt: parts[1]}, nil
}

// accountFixture bundles the service under test with its collaborators.
type accountFixture struct {
	service     usecase.AccountUsecase
	authService usecase.AuthUsecase
	postService usecase.PostUsecase
	accountRepo *memAccountRepo
	postRepo    *memPostRepo
	hasher      service.CredentialHasher
}

func createTestServices(t *testing.T) *accountFixture {
	t.Helper()

	accountRepo := newMemAccountRepo()
	postRepo := newMemPostRepo()
	txManager := &memTxManager{accountRepo: accountRepo, postRepo: postRepo}
	hasher := auth.NewSHAHasher()
	saltSource := auth.NewRandSaltSource()
	codec := plainTokenCodec{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Accounts: &config.AccountsConfig{PerPage: 10},
	}

	return &accountFixture{
		service:     NewAccountService(txManager, accountRepo, hasher, saltSource, codec, cfg, logger),
		authService: NewAuthService(accountRepo, hasher, codec, logger),
		postService: NewPostService(postRepo, logger),
		accountRepo: accountRepo,
		postRepo:    postRepo,
		hasher:      hasher,
	}
}

// signUp is a shorthand for registering a valid account in a test.
func (fx *accountFixture) signUp(t *testing.T, name, email, password string) *usecase.SignUpOutput {
	t.Helper()

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	return output
}

// makeAdmin flips the admin flag on a stored account.
func (fx *accountFixture) makeAdmin(t *testing.T, id uuid.UUID) *entity.Identity {
	t.Helper()

	account, ok := fx.accountRepo.accounts[id]
	if !ok {
		t.Fatalf("account %s not found", id)
	}
	account.Admin = true

	return account.Identity()
}
