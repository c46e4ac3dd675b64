package service

import (
	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/domain/contract"
)

type Instance struct {
	Day    *dayService
	Pruner *historyPruner
}

// NewInstance wires the services. Pass a nil dm to run without lookup
// history; Pruner is then nil as well.
func NewInstance(dm contract.DataManager, cfg *config.Config) (*Instance, error) {
	instance := &Instance{
		Day: newDayService(dm, cfg.DefaultTimezone),
	}

	if dm == nil {
		return instance, nil
	}

	pruner, err := newHistoryPruner(dm, cfg.HistoryPruneSchedule, cfg.HistoryRetention)
	if err != nil {
		return nil, err
	}
	instance.Pruner = pruner

	return instance, nil
}
