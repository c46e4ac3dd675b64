package database

import (
	"fmt"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain/contract"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

type lookupRepo struct {
	db dbConn
}

func newLookupRepo(db dbConn) contract.LookupRepo {
	return &lookupRepo{db: db}
}

func (r *lookupRepo) Create(lookup *entity.Lookup) error {
	query := `
		INSERT INTO lookups (lookup_uuid, weekday_input, weekday, timezone, mode,
			resolved_at, epoch_seconds, used_fallback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		lookup.UUID,
		lookup.WeekdayInput,
		lookup.Weekday,
		lookup.Timezone,
		string(lookup.Mode),
		lookup.ResolvedAt,
		lookup.EpochSeconds,
		lookup.UsedMidnightFallback,
		lookup.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lookup.ID = id
	return nil
}

func (r *lookupRepo) ListRecent(limit int) ([]*entity.Lookup, error) {
	query := `
		SELECT id, lookup_uuid, weekday_input, weekday, timezone, mode,
			resolved_at, epoch_seconds, used_fallback, created_at
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups: %w", err)
	}
	defer rows.Close()

	var lookups []*entity.Lookup
	for rows.Next() {
		lookup := &entity.Lookup{}
		var mode string
		var createdAt int64

		err := rows.Scan(
			&lookup.ID,
			&lookup.UUID,
			&lookup.WeekdayInput,
			&lookup.Weekday,
			&lookup.Timezone,
			&mode,
			&lookup.ResolvedAt,
			&lookup.EpochSeconds,
			&lookup.UsedMidnightFallback,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}

		lookup.Mode = entity.Mode(mode)
		lookup.CreatedAt = time.Unix(createdAt, 0).UTC()
		lookups = append(lookups, lookup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lookups: %w", err)
	}

	return lookups, nil
}

func (r *lookupRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM lookups WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old lookups: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return deleted, nil
}
