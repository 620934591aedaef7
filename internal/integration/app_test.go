package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-reservation-system/internal/app"
	"github.com/metinatakli/theater-reservation-system/internal/repository"
	appvalidator "github.com/metinatakli/theater-reservation-system/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	userRepo := repository.NewPostgresUserRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	theaterRepo := repository.NewPostgresTheaterRepository(db)
	screenRepo := repository.NewPostgresScreenRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	slotRepo := repository.NewPostgresSlotRepository(db)
	reservationRepo := repository.NewPostgresReservationRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		userRepo,
		movieRepo,
		theaterRepo,
		screenRepo,
		seatRepo,
		slotRepo,
		reservationRepo,
	)

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
	}, nil
}
