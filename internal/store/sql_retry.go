package store

import (
	"context"
	"fmt"
	"time"
)

// retryDelays are the pauses between attempts of an operation whose error
// is classified as [Retryable].
var retryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// withRetry runs fn until it succeeds, fails with a non-retryable error,
// runs out of attempts or ctx is done.
func (db *DB) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	for attempt := 0; err != nil && attempt < len(retryDelays); attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("op", op).
			Int("attempt", attempt+1).
			Dur("delay", retryDelays[attempt]).
			Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelays[attempt]):
		}

		err = fn(ctx)
	}

	return err
}

func (db *DB) ping(ctx context.Context) error {
	return db.withRetry(ctx, "ping", db.PingContext)
}

// translate wraps err with the sentinel the classifier maps it to, if any.
func (db *DB) translate(err error) error {
	if db.errorClassificator == nil {
		return err
	}
	if sentinel := db.errorClassificator.Translate(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
