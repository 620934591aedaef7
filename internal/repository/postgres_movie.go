package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, description, release_date, duration, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Duration,
		movie.Rating).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
}

func (p *PostgresMovieRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Movie, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, title, description, release_date, duration, rating, created_at, updated_at
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	totalRecords := 0

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.ReleaseDate,
			&movie.Duration,
			&movie.Rating,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, description, release_date, duration, rating, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Duration,
		&movie.Rating,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) GetByIds(ctx context.Context, ids []int) ([]domain.Movie, error) {
	if len(ids) == 0 {
		return []domain.Movie{}, nil
	}

	query := `
		SELECT id, title, description, release_date, duration, rating, created_at, updated_at
		FROM movies
		WHERE id = ANY($1)
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		err = rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.ReleaseDate,
			&movie.Duration,
			&movie.Rating,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, description = $2, release_date = $3, duration = $4, rating = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Duration,
		movie.Rating,
		movie.ID).Scan(&movie.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
