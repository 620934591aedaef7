package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type PostgresSlotRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSlotRepository(db *pgxpool.Pool) *PostgresSlotRepository {
	return &PostgresSlotRepository{
		db: db,
	}
}

func (p *PostgresSlotRepository) Create(ctx context.Context, slot *domain.Slot) error {
	query := `
		INSERT INTO slots (screen_id, movie_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		slot.ScreenID,
		slot.MovieID,
		slot.StartTime,
		slot.EndTime).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)
}

func (p *PostgresSlotRepository) GetById(ctx context.Context, id int) (*domain.Slot, error) {
	query := `
		SELECT id, screen_id, movie_id, start_time, end_time, created_at, updated_at
		FROM slots
		WHERE id = $1
	`

	return p.getOne(ctx, query, id)
}

func (p *PostgresSlotRepository) GetByIdAndScreen(ctx context.Context, id, screenId int) (*domain.Slot, error) {
	query := `
		SELECT id, screen_id, movie_id, start_time, end_time, created_at, updated_at
		FROM slots
		WHERE id = $1 AND screen_id = $2
	`

	return p.getOne(ctx, query, id, screenId)
}

func (p *PostgresSlotRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Slot, error) {
	var slot domain.Slot

	err := p.db.QueryRow(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ScreenID,
		&slot.MovieID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &slot, nil
}

func (p *PostgresSlotRepository) GetAllByScreen(ctx context.Context, screenId int) ([]domain.Slot, error) {
	query := `
		SELECT id, screen_id, movie_id, start_time, end_time, created_at, updated_at
		FROM slots
		WHERE screen_id = $1
		ORDER BY start_time
	`

	rows, err := p.db.Query(ctx, query, screenId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (p *PostgresSlotRepository) GetAllByScreenIds(ctx context.Context, screenIds []int) ([]domain.Slot, error) {
	if len(screenIds) == 0 {
		return []domain.Slot{}, nil
	}

	query := `
		SELECT id, screen_id, movie_id, start_time, end_time, created_at, updated_at
		FROM slots
		WHERE screen_id = ANY($1)
		ORDER BY start_time, id
	`

	rows, err := p.db.Query(ctx, query, screenIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (p *PostgresSlotRepository) GetAllByMovie(ctx context.Context, movieId int) ([]domain.Slot, error) {
	query := `
		SELECT id, screen_id, movie_id, start_time, end_time, created_at, updated_at
		FROM slots
		WHERE movie_id = $1
		ORDER BY start_time, id
	`

	rows, err := p.db.Query(ctx, query, movieId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (p *PostgresSlotRepository) Update(ctx context.Context, slot *domain.Slot) error {
	query := `
		UPDATE slots
		SET movie_id = $1, start_time = $2, end_time = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		slot.MovieID,
		slot.StartTime,
		slot.EndTime,
		slot.ID).Scan(&slot.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresSlotRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanSlots(rows pgx.Rows) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot

		err := rows.Scan(
			&slot.ID,
			&slot.ScreenID,
			&slot.MovieID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
