package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/metrics"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	metrics      *metrics.Metrics
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Metrics:      m,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		metrics:      m,
	}
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
		Phone:    "0600000000",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()
	newID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, input.Name, user.Name)
			assert.Equal(t, input.Phone, user.Phone)
			user.ID = newID
			user.CreatedAt = createdAt
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueToken(mock.MatchedBy(func(u *entity.User) bool { return u.ID == newID })).
		Return("signed.jwt.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, createdAt, output.User.CreatedAt)
	expected := `
# HELP estate_account_operations_total Registrations and logins by outcome
# TYPE estate_account_operations_total counter
estate_account_operations_total{operation="register",outcome="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(fx.metrics.Registry(), strings.NewReader(expected), "estate_account_operations_total"))
}

func TestAccountService_Register_EmailAlreadyInUse(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAccountService_Register_UniqueViolationOnInsert(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAccountService_Register_StoreFailures(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(fx accountServiceFixtures, ctx context.Context, input usecase.RegisterInput)
	}{
		{
			name: "lookup fails",
			setup: func(fx accountServiceFixtures, ctx context.Context, input usecase.RegisterInput) {
				fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr)
			},
		},
		{
			name: "hash fails",
			setup: func(fx accountServiceFixtures, ctx context.Context, input usecase.RegisterInput) {
				fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash(input.Password).Return("", dbErr)
			},
		},
		{
			name: "insert fails",
			setup: func(fx accountServiceFixtures, ctx context.Context, input usecase.RegisterInput) {
				fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
				fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(dbErr)
			},
		},
		{
			name: "token signing fails",
			setup: func(fx accountServiceFixtures, ctx context.Context, input usecase.RegisterInput) {
				fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
				fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
				fx.tokenService.EXPECT().IssueToken(mock.AnythingOfType("*entity.User")).Return("", dbErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			input := registerInput()
			tt.setup(fx, ctx, input)

			output, err := fx.service.Register(ctx, input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
			assert.ErrorIs(t, err, dbErr)
		})
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	avatar := "avatars/alice.png"
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Name:         "Alice",
		Avatar:       &avatar,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed_password").Return(true)
	fx.tokenService.EXPECT().IssueToken(user).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Same(t, user, output.User)
}

func TestAccountService_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAccountService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})

	wrong := createTestAccountService(t)
	wrong.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed_password"}, nil)
	wrong.hasher.EXPECT().Check("bad", "hashed_password").Return(false)
	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "bad"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	expected := `
# HELP estate_account_operations_total Registrations and logins by outcome
# TYPE estate_account_operations_total counter
estate_account_operations_total{operation="login",outcome="rejected"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(unknown.metrics.Registry(), strings.NewReader(expected), "estate_account_operations_total"))
}

func TestAccountService_Login_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	dbErr := errors.New("timeout")

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, dbErr)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "secret123"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
	assert.ErrorIs(t, err, dbErr)
}
