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

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name, location)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(ctx, query, theater.Name, theater.Location).Scan(
		&theater.ID,
		&theater.CreatedAt,
		&theater.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrTheaterNameTaken
		}

		return err
	}

	return nil
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `
		SELECT id, name, location, created_at, updated_at
		FROM theaters
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTheaters(rows)
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `
		SELECT id, name, location, created_at, updated_at
		FROM theaters
		WHERE id = $1
	`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.CreatedAt,
		&theater.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) GetByIds(ctx context.Context, ids []int) ([]domain.Theater, error) {
	if len(ids) == 0 {
		return []domain.Theater{}, nil
	}

	query := `
		SELECT id, name, location, created_at, updated_at
		FROM theaters
		WHERE id = ANY($1)
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTheaters(rows)
}

func (p *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `
		UPDATE theaters
		SET name = $1, location = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := p.db.QueryRow(ctx, query, theater.Name, theater.Location, theater.ID).Scan(&theater.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrTheaterNameTaken
		}

		return err
	}

	return nil
}

func (p *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanTheaters(rows pgx.Rows) ([]domain.Theater, error) {
	theaters := make([]domain.Theater, 0)

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.Location,
			&theater.CreatedAt,
			&theater.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}
