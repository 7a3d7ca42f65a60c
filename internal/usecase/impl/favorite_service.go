package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/infra/metrics"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	operationListFavorites  = "list"
	operationAddFavorite    = "add"
	operationRemoveFavorite = "remove"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	PropertyRepo repository.PropertyRepository
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		propertyRepo: params.PropertyRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFavorites returns the user's favorited listings, newest favorite first.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) (favorites []*entity.FavoriteProperty, err error) {
	defer func() { srv.metrics.RecordFavoriteOperation(operationListFavorites, outcomeOf(err)) }()

	favorites, err = srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrFavoritesFetchFailed.WithCause(err)
	}
	if favorites == nil {
		favorites = []*entity.FavoriteProperty{}
	}

	srv.log(ctx).Debug("Listed favorites", slog.Any("userID", userID), slog.Int("count", len(favorites)))

	return favorites, nil
}

// AddFavorite bookmarks an existing property for the user.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) (favorite *entity.Favorite, err error) {
	defer func() { srv.metrics.RecordFavoriteOperation(operationAddFavorite, outcomeOf(err)) }()

	if propertyID == uuid.Nil {
		return nil, domainerrors.ErrPropertyIDRequired
	}

	exists, err := srv.propertyRepo.Exists(ctx, propertyID)
	if err != nil {
		return nil, domainerrors.ErrFavoriteAddFailed.WithCause(err)
	}
	if !exists {
		return nil, domainerrors.ErrPropertyNotFound
	}

	already, err := srv.favoriteRepo.Exists(ctx, userID, propertyID)
	if err != nil {
		return nil, domainerrors.ErrFavoriteAddFailed.WithCause(err)
	}
	if already {
		return nil, domainerrors.ErrFavoriteAlreadyExists
	}

	favorite = &entity.Favorite{UserID: userID, PropertyID: propertyID}
	if err = srv.favoriteRepo.Create(ctx, favorite); err != nil {
		// The constraints settle races with concurrent adds and deletes.
		switch {
		case errors.Is(err, repository.ErrDuplicateFavorite):
			return nil, domainerrors.ErrFavoriteAlreadyExists
		case errors.Is(err, repository.ErrPropertyNotFound):
			return nil, domainerrors.ErrPropertyNotFound
		default:
			return nil, domainerrors.ErrFavoriteAddFailed.WithCause(err)
		}
	}

	srv.log(ctx).Info("Favorite added", slog.Any("userID", userID), slog.Any("propertyID", propertyID))

	return favorite, nil
}

// RemoveFavorite deletes the user's bookmark of the property.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) (err error) {
	defer func() { srv.metrics.RecordFavoriteOperation(operationRemoveFavorite, outcomeOf(err)) }()

	if err = srv.favoriteRepo.Delete(ctx, userID, propertyID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return domainerrors.ErrFavoriteRemoveFailed.WithCause(err)
	}

	srv.log(ctx).Info("Favorite removed", slog.Any("userID", userID), slog.Any("propertyID", propertyID))

	return nil
}
