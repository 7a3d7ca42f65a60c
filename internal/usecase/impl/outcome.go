package impl

import (
	"net/http"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"
	"estate/internal/infra/metrics"
)

// outcomeOf classifies an operation result for the metrics outcome label.
// Client-caused failures are "rejected", everything else is "error".
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		return metrics.OutcomeRejected
	}

	return metrics.OutcomeError
}
