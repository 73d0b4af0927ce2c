package patients

import (
	"context"
)

//go:generate go tool mockgen -source=./repo.go -destination=./test/mock_repository.go -package test

// Repository persists patient profiles. It is implemented by the storage layer
// of the surrounding service.
type Repository interface {
	Get(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, profile Profile) (*Profile, error)
	Update(ctx context.Context, id string, profile Profile) (*Profile, error)
}
