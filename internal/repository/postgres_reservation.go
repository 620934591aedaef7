package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// CreateBatch reserves every requested seat for the slot or none of them.
// The conflict check locks the candidate rows with FOR UPDATE so concurrent
// batches over the same seats serialize; the insert race that row locks
// cannot see (both transactions find no rows) is caught by the unique index
// on (slot_id, seat_id) and reported the same way.
func (p *PostgresReservationRepository) CreateBatch(
	ctx context.Context,
	userId, slotId int,
	seatIds []int) ([]domain.Reservation, error) {

	reservations := make([]domain.Reservation, 0, len(seatIds))

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT seat_id
			FROM reservations
			WHERE slot_id = $1 AND seat_id = ANY($2)
			FOR UPDATE
		`

		rows, err := tx.Query(ctx, query, slotId, seatIds)
		if err != nil {
			return err
		}

		taken := false
		for rows.Next() {
			taken = true
		}
		rows.Close()

		if err = rows.Err(); err != nil {
			return err
		}

		if taken {
			return domain.ErrSeatAlreadyReserved
		}

		query = `
			INSERT INTO reservations (user_id, slot_id, seat_id, reserved_at)
			SELECT $1, $2, s.seat_id, $4
			FROM unnest($3::int[]) AS s(seat_id)
			RETURNING id, user_id, slot_id, seat_id, reserved_at, created_at
		`

		reservedAt := time.Now().UTC()

		rows, err = tx.Query(ctx, query, userId, slotId, seatIds, reservedAt)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var reservation domain.Reservation

			err = rows.Scan(
				&reservation.ID,
				&reservation.UserID,
				&reservation.SlotID,
				&reservation.SeatID,
				&reservation.ReservedAt,
				&reservation.CreatedAt,
			)
			if err != nil {
				return err
			}

			reservations = append(reservations, reservation)
		}

		return rows.Err()
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrSeatAlreadyReserved
		}

		return nil, err
	}

	return reservations, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresReservationRepository) GetById(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `
		SELECT id, user_id, slot_id, seat_id, reserved_at, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation domain.Reservation

	err := p.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.SlotID,
		&reservation.SeatID,
		&reservation.ReservedAt,
		&reservation.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &reservation, nil
}

func (p *PostgresReservationRepository) GetAllByUser(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, slot_id, seat_id, reserved_at, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(
			&totalRecords,
			&reservation.ID,
			&reservation.UserID,
			&reservation.SlotID,
			&reservation.SeatID,
			&reservation.ReservedAt,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetAllBySlot(ctx context.Context, slotId int) ([]domain.Reservation, error) {
	query := `
		SELECT id, user_id, slot_id, seat_id, reserved_at, created_at
		FROM reservations
		WHERE slot_id = $1
	`

	rows, err := p.db.Query(ctx, query, slotId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation

		err = rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.SlotID,
			&reservation.SeatID,
			&reservation.ReservedAt,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (p *PostgresReservationRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
