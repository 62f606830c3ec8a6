package catalog

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// ThrottledRepo paces every store call through a token bucket so a hosted
// database with request quotas is not overrun by the bulk load.
type ThrottledRepo struct {
	next    Repository
	limiter *rate.Limiter
}

var _ Repository = (*ThrottledRepo)(nil)

// NewThrottledRepo wraps next with a limit of opsPerSecond store calls.
// A non-positive rate returns next unchanged.
func NewThrottledRepo(next Repository, opsPerSecond int) Repository {
	if opsPerSecond <= 0 {
		return next
	}
	return &ThrottledRepo{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(opsPerSecond)), 1),
	}
}

func (r *ThrottledRepo) UpsertAuthor(ctx context.Context, a *Author) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	return r.next.UpsertAuthor(ctx, a)
}

func (r *ThrottledRepo) FindAuthorByID(ctx context.Context, id string) (Author, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Author{}, err
	}
	return r.next.FindAuthorByID(ctx, id)
}

func (r *ThrottledRepo) UpsertWork(ctx context.Context, w *Work) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	return r.next.UpsertWork(ctx, w)
}

func (r *ThrottledRepo) FindWorkByID(ctx context.Context, id string) (Work, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Work{}, err
	}
	return r.next.FindWorkByID(ctx, id)
}
