package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// CreateBatch inserts a seat layout for a screen in one statement. The
// unique index on (screen_id, seat_number) rejects the whole batch when any
// seat number is already present.
func (p *PostgresSeatRepository) CreateBatch(
	ctx context.Context,
	screenId int,
	seatNumbers []int) ([]domain.Seat, error) {

	query := `
		INSERT INTO seats (screen_id, seat_number)
		SELECT $1, s.seat_number
		FROM unnest($2::int[]) AS s(seat_number)
		RETURNING id, screen_id, seat_number, created_at, updated_at
	`

	rows, err := p.db.Query(ctx, query, screenId, seatNumbers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats, err := scanSeats(rows)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateSeatNumber
		}

		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) GetByIdAndScreen(ctx context.Context, id, screenId int) (*domain.Seat, error) {
	query := `
		SELECT id, screen_id, seat_number, created_at, updated_at
		FROM seats
		WHERE id = $1 AND screen_id = $2
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, id, screenId).Scan(
		&seat.ID,
		&seat.ScreenID,
		&seat.SeatNumber,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &seat, nil
}

func (p *PostgresSeatRepository) GetByIdsAndScreen(ctx context.Context, ids []int, screenId int) ([]domain.Seat, error) {
	if len(ids) == 0 {
		return []domain.Seat{}, nil
	}

	query := `
		SELECT id, screen_id, seat_number, created_at, updated_at
		FROM seats
		WHERE id = ANY($1) AND screen_id = $2
		ORDER BY seat_number
	`

	rows, err := p.db.Query(ctx, query, ids, screenId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (p *PostgresSeatRepository) GetAllByScreen(ctx context.Context, screenId int) ([]domain.Seat, error) {
	query := `
		SELECT id, screen_id, seat_number, created_at, updated_at
		FROM seats
		WHERE screen_id = $1
		ORDER BY seat_number
	`

	rows, err := p.db.Query(ctx, query, screenId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeats(rows)
}

func (p *PostgresSeatRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanSeats(rows pgx.Rows) ([]domain.Seat, error) {
	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
			&seat.ID,
			&seat.ScreenID,
			&seat.SeatNumber,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
