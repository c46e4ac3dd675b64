package contract

import (
	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/mock_service.go -package=mocks

type DayService interface {
	// Compute resolves the requested weekday occurrence and projects it into
	// every supported timestamp format.
	Compute(req entity.DayRequest) (*entity.Timestamps, error)
	// History returns the most recent lookups, newest first.
	History(limit int) ([]*entity.Lookup, error)
	// HistoryEnabled reports whether lookups are being recorded.
	HistoryEnabled() bool
}
