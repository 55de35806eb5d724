package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that cannot be returned to the caller. Errors caused
// by a cancelled request are logged as warnings.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("request aborted", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
