package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain/contract"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// historyPruner periodically deletes lookups older than the retention window.
type historyPruner struct {
	dm        contract.DataManager
	retention time.Duration
	cron      *cron.Cron
	now       func() time.Time

	mu      sync.Mutex
	running bool
}

func newHistoryPruner(dm contract.DataManager, schedule string, retention time.Duration) (*historyPruner, error) {
	p := &historyPruner{
		dm:        dm,
		retention: retention,
		cron:      cron.New(),
		now:       time.Now,
	}

	if _, err := p.cron.AddFunc(schedule, p.prune); err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", schedule, err)
	}

	return p, nil
}

func (p *historyPruner) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}
	p.running = true
	log.WithField("retention", p.retention).Info("History pruner starting...")
	p.cron.Start()
}

// Stop blocks until a prune that is already running has finished.
func (p *historyPruner) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	log.Info("History pruner stopping...")
	<-p.cron.Stop().Done()
	p.running = false
}

func (p *historyPruner) prune() {
	cutoff := p.now().Add(-p.retention)

	deleted, err := p.dm.Lookup().DeleteOlderThan(cutoff)
	if err != nil {
		log.WithError(err).Error("failed to prune lookup history")
		return
	}
	if deleted > 0 {
		log.WithFields(log.Fields{
			"deleted": deleted,
			"cutoff":  cutoff.Format(time.RFC3339),
		}).Info("pruned lookup history")
	}
}
