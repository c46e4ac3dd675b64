package contract

import (
	"time"

	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/mock_repo.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	Lookup() LookupRepo
}

// LookupRepo defines the contract for the lookup history repository
type LookupRepo interface {
	Create(lookup *entity.Lookup) error
	ListRecent(limit int) ([]*entity.Lookup, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
