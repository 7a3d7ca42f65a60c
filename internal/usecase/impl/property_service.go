package impl

import (
	"context"
	"log/slog"

	"estate/config"
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

const operationDeleteProperty = "delete"

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	txManager    repository.TransactionManager
	orphanPolicy entity.OrphanPolicy
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
// It fails when favorites.orphanPolicy names an unknown policy.
func NewPropertyService(params PropertyServiceParams) (usecase.PropertyUsecase, error) {
	policy := entity.DefaultOrphanPolicy
	if params.Config != nil && params.Config.Favorites != nil {
		parsed, err := entity.ParseOrphanPolicy(params.Config.Favorites.OrphanPolicy)
		if err != nil {
			return nil, errors.Wrap(err, "invalid favorites.orphanPolicy")
		}
		policy = parsed
	}

	return &propertyService{
		txManager:    params.TxManager,
		orphanPolicy: policy,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}, nil
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteProperty removes the owner's listing and, under the cascade policy,
// every favorite pointing at it. Both happen in one transaction.
func (srv *propertyService) DeleteProperty(ctx context.Context, ownerID, propertyID uuid.UUID) (err error) {
	defer func() { srv.metrics.RecordPropertyOperation(operationDeleteProperty, outcomeOf(err)) }()

	if propertyID == uuid.Nil {
		return domainerrors.ErrPropertyIDRequired
	}

	var removedFavorites int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if srv.orphanPolicy == entity.OrphanPolicyCascade {
			removed, err := repoFactory.NewFavoriteRepository().DeleteByProperty(ctx, propertyID)
			if err != nil {
				return err
			}
			removedFavorites = removed
		}

		return repoFactory.NewPropertyRepository().DeleteOwned(ctx, propertyID, ownerID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}
		if errors.Is(err, repository.ErrPropertyReferenced) {
			return domainerrors.ErrPropertyStillReferenced.WithCause(err)
		}

		return domainerrors.ErrPropertyDeleteFailed.WithCause(err)
	}

	srv.log(ctx).Info("Property deleted",
		slog.Any("propertyID", propertyID),
		slog.String("orphanPolicy", srv.orphanPolicy.String()),
		slog.Int64("removedFavorites", removedFavorites),
	)

	return nil
}
