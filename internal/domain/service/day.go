package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/contract"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
	"github.com/diegoclair/weekday-api/internal/domain/timezone"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type dayService struct {
	dm              contract.DataManager
	defaultTimezone string
}

// newDayService builds the service. A nil dm disables the lookup history.
func newDayService(dm contract.DataManager, defaultTimezone string) *dayService {
	if defaultTimezone == "" {
		defaultTimezone = domain.DefaultTimezone
	}
	return &dayService{
		dm:              dm,
		defaultTimezone: defaultTimezone,
	}
}

func (s *dayService) Compute(req entity.DayRequest) (*entity.Timestamps, error) {
	target, ok := entity.ParseWeekday(req.Weekday)
	if !ok {
		return nil, domain.ErrInvalidWeekday
	}

	loc, err := timezone.Resolve(req.Timezone, s.defaultTimezone)
	if err != nil {
		return nil, err
	}

	mode, ok := entity.ParseMode(string(req.Mode))
	if !ok {
		mode = entity.ModeNext
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	date := ResolveDate(entity.DateOf(now), target, mode)

	instant, usedFallback, err := BuildInstant(loc, date, entity.TimeOfDayOf(now))
	if err != nil {
		return nil, err
	}

	if usedFallback {
		log.WithFields(log.Fields{
			"timezone": loc.String(),
			"date":     date.String(),
			"time":     entity.TimeOfDayOf(now).String(),
		}).Warn("local time is ambiguous or skipped, using midnight")
	}

	ts := FormatTimestamps(instant, req.Weekday, loc.String())
	ts.Input.Mode = mode
	ts.UsedMidnightFallback = usedFallback

	s.record(&ts)

	return &ts, nil
}

func (s *dayService) record(ts *entity.Timestamps) {
	if s.dm == nil {
		return
	}

	lookup := &entity.Lookup{
		UUID:                 uuid.NewString(),
		WeekdayInput:         ts.Input.Weekday,
		Weekday:              ts.Input.Day,
		Timezone:             ts.Input.Timezone,
		Mode:                 ts.Input.Mode,
		ResolvedAt:           ts.Local.RFC3339,
		EpochSeconds:         ts.Epoch.Seconds,
		UsedMidnightFallback: ts.UsedMidnightFallback,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.dm.Lookup().Create(lookup); err != nil {
		log.WithError(err).Warn("failed to record lookup")
	}
}

func (s *dayService) HistoryEnabled() bool {
	return s.dm != nil
}

func (s *dayService) History(limit int) ([]*entity.Lookup, error) {
	if s.dm == nil {
		return nil, domain.ErrHistoryDisabled
	}

	switch {
	case limit <= 0:
		limit = domain.DefaultHistoryLimit
	case limit > domain.MaxHistoryLimit:
		limit = domain.MaxHistoryLimit
	}

	lookups, err := s.dm.Lookup().ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups: %w", err)
	}
	return lookups, nil
}
