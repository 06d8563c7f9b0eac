package blockedperiod

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *BlockedPeriod) error

	// ListOverlapping returns blocked periods on the venue intersecting
	// [start, end] with inclusive boundaries.
	ListOverlapping(ctx context.Context, venueID string, start, end time.Time) ([]*BlockedPeriod, error)

	// ListByVenue returns all blocked periods for a venue sorted by start date.
	ListByVenue(ctx context.Context, venueID string) ([]*BlockedPeriod, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var blockedPeriodColumns = []string{
	"id", "venue_id", "start_date", "end_date", "reason", "created_by", "created_at",
}

func (r *pgxRepository) Create(ctx context.Context, p *BlockedPeriod) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.blocked_periods").
		Columns("venue_id", "start_date", "end_date", "reason", "created_by").
		Values(p.VenueID, p.StartDate, p.EndDate, p.Reason, p.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create blocked period query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("create blocked period failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, venueID string, start, end time.Time) ([]*BlockedPeriod, error) {
	// Inclusive overlap: start_date <= end AND end_date >= start.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(blockedPeriodColumns...).
		From("public.blocked_periods").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlapping blocked periods query failed: %w", err)
	}

	return r.queryPeriods(ctx, query, args)
}

func (r *pgxRepository) ListByVenue(ctx context.Context, venueID string) ([]*BlockedPeriod, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(blockedPeriodColumns...).
		From("public.blocked_periods").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blocked periods query failed: %w", err)
	}

	return r.queryPeriods(ctx, query, args)
}

func (r *pgxRepository) queryPeriods(ctx context.Context, query string, args []any) ([]*BlockedPeriod, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocked periods failed: %w", err)
	}
	defer rows.Close()

	var periods []*BlockedPeriod
	for rows.Next() {
		var p BlockedPeriod
		if err := rows.Scan(
			&p.ID, &p.VenueID, &p.StartDate, &p.EndDate,
			&p.Reason, &p.CreatedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blocked period failed: %w", err)
		}
		periods = append(periods, &p)
	}
	return periods, rows.Err()
}
