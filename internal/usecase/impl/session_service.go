package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(userRepo repository.UserRepository, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentUser loads the user named by a validated token.
func (srv *sessionService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A valid token for a user that no longer exists.
			srv.log(ctx).Warn("Authenticated user not found", slog.Any("userID", userID))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.ErrUserLookupFailed.WithCause(errors.Wrap(err, "failed to find user by id"))
	}

	return user, nil
}
