// Package shared holds the contracts every aggregate of the checkout domain
// agrees on.
package shared

import "context"

// Repository is the persistence contract of an aggregate root T.
// Find returns the aggregate's own not-found error for unknown ids.
type Repository[T any] interface {
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Find(ctx context.Context, id string) (T, error)
	FindAll(ctx context.Context) ([]T, error)
}
