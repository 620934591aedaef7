package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type PostgresScreenRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreenRepository(db *pgxpool.Pool) *PostgresScreenRepository {
	return &PostgresScreenRepository{
		db: db,
	}
}

func (p *PostgresScreenRepository) Create(ctx context.Context, screen *domain.Screen) error {
	query := `
		INSERT INTO screens (theater_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(ctx, query, screen.TheaterID, screen.Name).Scan(
		&screen.ID,
		&screen.CreatedAt,
		&screen.UpdatedAt,
	)
}

func (p *PostgresScreenRepository) GetById(ctx context.Context, id int) (*domain.Screen, error) {
	query := `
		SELECT id, theater_id, name, created_at, updated_at
		FROM screens
		WHERE id = $1
	`

	return p.getOne(ctx, query, id)
}

func (p *PostgresScreenRepository) GetByIdAndTheater(ctx context.Context, id, theaterId int) (*domain.Screen, error) {
	query := `
		SELECT id, theater_id, name, created_at, updated_at
		FROM screens
		WHERE id = $1 AND theater_id = $2
	`

	return p.getOne(ctx, query, id, theaterId)
}

func (p *PostgresScreenRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Screen, error) {
	var screen domain.Screen

	err := p.db.QueryRow(ctx, query, args...).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.Name,
		&screen.CreatedAt,
		&screen.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &screen, nil
}

func (p *PostgresScreenRepository) GetAllByTheater(ctx context.Context, theaterId int) ([]domain.Screen, error) {
	query := `
		SELECT id, theater_id, name, created_at, updated_at
		FROM screens
		WHERE theater_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, theaterId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScreens(rows)
}

func (p *PostgresScreenRepository) GetByIds(ctx context.Context, ids []int) ([]domain.Screen, error) {
	if len(ids) == 0 {
		return []domain.Screen{}, nil
	}

	query := `
		SELECT id, theater_id, name, created_at, updated_at
		FROM screens
		WHERE id = ANY($1)
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScreens(rows)
}

func (p *PostgresScreenRepository) Update(ctx context.Context, screen *domain.Screen) error {
	query := `
		UPDATE screens
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`

	err := p.db.QueryRow(ctx, query, screen.Name, screen.ID).Scan(&screen.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresScreenRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM screens WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanScreens(rows pgx.Rows) ([]domain.Screen, error) {
	screens := make([]domain.Screen, 0)

	for rows.Next() {
		var screen domain.Screen

		err := rows.Scan(
			&screen.ID,
			&screen.TheaterID,
			&screen.Name,
			&screen.CreatedAt,
			&screen.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		screens = append(screens, screen)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return screens, nil
}
