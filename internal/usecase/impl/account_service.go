// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/infra/metrics"
	"estate/internal/usecase"

	"go.uber.org/fx"
)

const (
	operationRegister = "register"
	operationLogin    = "login"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the first session token for it.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (output *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.RecordAccountOperation(operationRegister, outcomeOf(err)) }()

	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	_, err = srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration rejected, email already in use", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyInUse
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, domainerrors.ErrRegistrationFailed.WithCause(errors.Wrap(err, "failed to check existing email"))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrRegistrationFailed.WithCause(errors.Wrap(err, "failed to hash password"))
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Phone:        input.Phone,
	}
	if err = srv.userRepo.Create(ctx, newUser); err != nil {
		// Lost the race against a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Info("Registration rejected by unique constraint", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyInUse
		}

		return nil, domainerrors.ErrRegistrationFailed.WithCause(errors.Wrap(err, "failed to create user"))
	}

	token, err := srv.tokenService.IssueToken(newUser)
	if err != nil {
		return nil, domainerrors.ErrRegistrationFailed.WithCause(errors.Wrap(err, "failed to issue token"))
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (output *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.RecordAccountOperation(operationLogin, outcomeOf(err)) }()

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed, unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.ErrLoginFailed.WithCause(errors.Wrap(err, "failed to find user by email"))
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(user)
	if err != nil {
		return nil, domainerrors.ErrLoginFailed.WithCause(errors.Wrap(err, "failed to issue token"))
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
