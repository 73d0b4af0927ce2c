package glucose

import (
	"context"
)

//go:generate go tool mockgen -source=./repo.go -destination=./test/mock_repository.go -package test

// Repository persists readings. It is implemented by the storage layer of the
// surrounding service.
type Repository interface {
	Get(ctx context.Context, id string) (*Reading, error)
	Create(ctx context.Context, reading Reading) (*Reading, error)
	Update(ctx context.Context, id string, reading Reading) (*Reading, error)
}

type TargetRepository interface {
	ListTargets(ctx context.Context, patientId string) ([]Target, error)
}
