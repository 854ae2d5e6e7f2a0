package impl

import (
	"context"
	"log/slog"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/access"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.CredentialHasher
	saltSource  service.SaltSource
	tokenCodec  service.SessionTokenCodec
	perPage     int
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	hasher service.CredentialHasher,
	saltSource service.SaltSource,
	tokenCodec service.SessionTokenCodec,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	perPage := 0
	if cfg != nil && cfg.Accounts != nil {
		perPage = cfg.Accounts.PerPage
	}
	if perPage <= 0 {
		perPage = 10
	}

	return &accountService{
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		saltSource:  saltSource,
		tokenCodec:  tokenCodec,
		perPage:     perPage,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete account creation process: validate every
// rule, generate the one-time salt, derive the digest, persist, sign in.
// Nothing is written until every check has passed.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	candidate := &entity.Candidate{
		Name:                 input.Name,
		Email:                email,
		Password:             input.Password,
		PasswordConfirmation: input.PasswordConfirmation,
		PasswordRequired:     true,
	}
	fieldErrors := candidate.Validate()

	var created *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Report the duplicate alongside the other rule failures so the
		// caller renders everything at once. The unique index still backs
		// this up against concurrent signups.
		if !fieldErrors.Has("email") {
			if _, err := accountRepo.FindByEmail(ctx, email); err == nil {
				fieldErrors = append(fieldErrors, entity.FieldError{
					Field:   "email",
					Message: "has already been taken",
				})
			} else if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
		}

		if len(fieldErrors) > 0 {
			return domainerrors.NewValidationError(fieldErrors)
		}

		salt, err := srv.saltSource.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate salt")
		}

		newAccount := &entity.Account{
			Name:           input.Name,
			Email:          email,
			Salt:           salt,
			PasswordDigest: service.DeriveDigest(srv.hasher, salt, input.Password),
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during signup")
		}
		created = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	// Sign the new account in right away.
	sessionToken, err := srv.tokenCodec.Encode(service.SessionToken{
		AccountID: created.ID,
		Salt:      created.Salt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session token after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", created.ID))

	return &usecase.SignUpOutput{
		Identity:     created.Identity(),
		SessionToken: sessionToken,
	}, nil
}

// GetAccount retrieves a single account for an authenticated viewer.
func (srv *accountService) GetAccount(ctx context.Context, acting *entity.Identity, id uuid.UUID) (*entity.Account, error) {
	if !access.IsAuthenticated(acting) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "authentication required")
	}

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// ListAccounts returns one page of the account index for an authenticated viewer.
func (srv *accountService) ListAccounts(ctx context.Context, acting *entity.Identity, input *usecase.ListAccountsInput) (*usecase.ListAccountsOutput, error) {
	if !access.IsAuthenticated(acting) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "authentication required")
	}

	page := 1
	if input != nil && input.Page > 0 {
		page = input.Page
	}

	accounts, total, err := srv.accountRepo.List(ctx, (page-1)*srv.perPage, srv.perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.ListAccountsOutput{
		Accounts: accounts,
		Total:    total,
		Page:     page,
		PerPage:  srv.perPage,
	}, nil
}

// UpdateProfile edits an account. The gate runs before anything else:
// authentication first, then ownership. Admins get no bypass here; only the
// account holder may edit their profile.
func (srv *accountService) UpdateProfile(ctx context.Context, acting *entity.Identity, targetID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	if !access.IsAuthenticated(acting) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "authentication required")
	}
	if !access.CanUpdateAccount(acting, targetID) {
		srv.log(ctx).Warn("Profile update denied",
			slog.Any("actingID", acting.ID), slog.Any("targetID", targetID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot edit another account")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		name := account.Name
		if input.Name != nil {
			name = *input.Name
		}
		email := account.Email
		if input.Email != nil {
			email = entity.NormalizeEmail(*input.Email)
		}

		candidate := &entity.Candidate{
			Name:                 name,
			Email:                email,
			Password:             input.Password,
			PasswordConfirmation: input.PasswordConfirmation,
		}
		fieldErrors := candidate.Validate()

		if email != account.Email && !fieldErrors.Has("email") {
			if _, err := accountRepo.FindByEmail(ctx, email); err == nil {
				fieldErrors = append(fieldErrors, entity.FieldError{
					Field:   "email",
					Message: "has already been taken",
				})
			} else if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
		}

		if len(fieldErrors) > 0 {
			return domainerrors.NewValidationError(fieldErrors)
		}

		account.Name = name
		account.Email = email
		// A password change recomputes the digest but never the salt, so
		// outstanding session tokens stay valid.
		if input.Password != "" {
			account.PasswordDigest = service.DeriveDigest(srv.hasher, account.Salt, input.Password)
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", updated.ID))

	return updated, nil
}

// DeleteAccount removes an account and its owned posts. Destruction is the
// one admin-gated operation.
func (srv *accountService) DeleteAccount(ctx context.Context, acting *entity.Identity, targetID uuid.UUID) error {
	if !access.IsAuthenticated(acting) {
		return errors.Wrap(domainerrors.ErrSessionInvalid, "authentication required")
	}
	if !access.CanDeleteAccount(acting) {
		srv.log(ctx).Warn("Account delete denied",
			slog.Any("actingID", acting.ID), slog.Any("targetID", targetID))

		return errors.Wrap(domainerrors.ErrForbidden, "admin rights required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		postRepo := repoFactory.PostRepo()

		if _, err := accountRepo.FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		// The FK cascade covers this too; deleting explicitly keeps the
		// behavior visible and works on stores without the constraint.
		if err := postRepo.DeleteByAccountID(ctx, targetID); err != nil {
			return errors.Wrap(err, "failed to delete owned posts")
		}

		if err := accountRepo.Delete(ctx, targetID); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("actingID", acting.ID), slog.Any("targetID", targetID))

	return nil
}
