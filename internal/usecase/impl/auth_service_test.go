package impl

import (
	"context"
	"testing"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestServices(t)
	signedUp := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	output, err := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "example@test.org",
		Password: "foobar23",
	})
	require.NoError(t, err)
	assert.Equal(t, signedUp.Identity.ID, output.Identity.ID)
	assert.Equal(t, "Hans Meier", output.Identity.Name)
	assert.NotEmpty(t, output.SessionToken)
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	fx := createTestServices(t)
	fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	output, err := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    " Example@Test.ORG ",
		Password: "foobar23",
	})
	require.NoError(t, err)
	assert.Equal(t, "example@test.org", output.Identity.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestServices(t)
	fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	_, err := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "example@test.org",
		Password: "foobar24",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmailSameRejection(t *testing.T) {
	fx := createTestServices(t)
	fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	_, wrongPassErr := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "example@test.org",
		Password: "wrong",
	})
	_, unknownErr := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@test.org",
		Password: "foobar23",
	})

	// An unknown address and a wrong password must be indistinguishable.
	require.Error(t, wrongPassErr)
	require.Error(t, unknownErr)
	assert.True(t, errors.Is(wrongPassErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ResumeSession_Success(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()
	signedUp := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	stored, err := fx.accountRepo.FindByID(ctx, signedUp.Identity.ID)
	require.NoError(t, err)

	identity, err := fx.authService.ResumeSession(ctx, service.SessionToken{
		AccountID: stored.ID,
		Salt:      stored.Salt,
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, identity.ID)
	assert.Equal(t, "Hans Meier", identity.Name)
}

func TestAuthService_ResumeSession_SaltMismatch(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()
	signedUp := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	_, err := fx.authService.ResumeSession(ctx, service.SessionToken{
		AccountID: signedUp.Identity.ID,
		Salt:      "0000000000000000000000000000dead",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestAuthService_ResumeSession_UnknownAccount(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.authService.ResumeSession(context.Background(), service.SessionToken{
		AccountID: uuid.New(),
		Salt:      "0000000000000000000000000000dead",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestAuthService_ResumeSession_SurvivesPasswordChange(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()
	signedUp := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	stored, err := fx.accountRepo.FindByID(ctx, signedUp.Identity.ID)
	require.NoError(t, err)
	token := service.SessionToken{AccountID: stored.ID, Salt: stored.Salt}

	_, err = fx.service.UpdateProfile(ctx, signedUp.Identity, signedUp.Identity.ID, &usecase.UpdateProfileInput{
		Password:             "newsecret42",
		PasswordConfirmation: "newsecret42",
	})
	require.NoError(t, err)

	// The salt did not rotate, so the old token still resumes.
	identity, err := fx.authService.ResumeSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, identity.ID)
}

func TestAuthService_SignUpThenLogin_EndToEnd(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	signedUp := fx.signUp(t, "Hans Meier", "example@test.org", "foobar23")

	loggedIn, err := fx.authService.Login(ctx, &usecase.LoginInput{
		Email:    "example@test.org",
		Password: "foobar23",
	})
	require.NoError(t, err)
	assert.Equal(t, signedUp.Identity.ID, loggedIn.Identity.ID)

	_, err = fx.authService.Login(ctx, &usecase.LoginInput{
		Email:    "example@test.org",
		Password: "foobar24",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
