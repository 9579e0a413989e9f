package obs

import (
	"context"
	"log/slog"
	"time"
)

// Time logs the duration of an operation and its error, if any.
//
//	defer obs.Time(ctx, logger, "copernicus.Token")(&err)
func Time(ctx context.Context, logger *slog.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.LogAttrs(ctx, slog.LevelDebug, "operation failed",
				slog.String("op", name),
				slog.Int64("dur_ms", dur.Milliseconds()),
				slog.Any("err", *errp),
			)
			return
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "operation done",
			slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
