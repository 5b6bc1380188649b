package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/workspace/tracking-proxy/internal/core/domain"
)

// allSettled runs fn once per tracking number concurrently and joins the
// results in input order. Failures never surface: a lookup error is replaced
// by the "unavailable" placeholder so one bad number cannot fail the batch.
func allSettled(ctx context.Context, trackingNumbers []string, fn func(ctx context.Context, index int, trackingNumber string) (*domain.TrackingStatus, error)) []domain.TrackingStatus {
	results := make([]domain.TrackingStatus, len(trackingNumbers))

	g, gctx := errgroup.WithContext(ctx)
	for i, tn := range trackingNumbers {
		i, tn := i, tn
		g.Go(func() error {
			status, err := fn(gctx, i, tn)
			if err != nil || status == nil {
				results[i] = domain.Unavailable(tn)
				return nil
			}
			results[i] = *status
			return nil
		})
	}
	// Workers only ever return nil; the join exists for completion, not errors.
	_ = g.Wait()

	return results
}
