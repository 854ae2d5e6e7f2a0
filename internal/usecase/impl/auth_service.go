// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. It is stateless: every
// call resolves credentials against the store and returns an identity or a
// rejection.
type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.CredentialHasher
	tokenCodec  service.SessionTokenCodec
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	accountRepo repository.AccountRepository,
	hasher service.CredentialHasher,
	tokenCodec service.SessionTokenCodec,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenCodec:  tokenCodec,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies an email/password pair. An unknown email and a wrong
// password both come back as ErrInvalidCredentials so a caller cannot tell
// registered addresses from unregistered ones.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	derived := service.DeriveDigest(srv.hasher, account.Salt, input.Password)
	if !srv.hasher.Matches(derived, account.PasswordDigest) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	sessionToken, err := srv.tokenCodec.Encode(service.SessionToken{
		AccountID: account.ID,
		Salt:      account.Salt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		Identity:     account.Identity(),
		SessionToken: sessionToken,
	}, nil
}

// ResumeSession re-authenticates from a persisted {accountID, salt} pair.
// Any lookup miss or salt divergence is the same rejection. A password
// change does not rotate the salt, so it does not invalidate the token.
func (srv *authService) ResumeSession(ctx context.Context, token service.SessionToken) (*entity.Identity, error) {
	account, err := srv.accountRepo.FindByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session resume failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	if account.Salt != token.Salt {
		srv.log(ctx).Warn("Session resume with stale salt", slog.Any("accountID", token.AccountID))

		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session resume failed")
	}

	return account.Identity(), nil
}
