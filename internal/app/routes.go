package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("theater-reservation-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.HealthcheckHandler)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Route("/users/me", func(r chi.Router) {
		r.Get("/", app.GetCurrentUser)
		r.Get("/reservations", app.GetReservationsOfUserHandler)
		r.Get("/reservations/{reservationId}", app.GetUserReservationByIdHandler)
	})

	r.With(app.requireAuthentication).Route("/reservations", func(r chi.Router) {
		r.Post("/", app.CreateReservationHandler)
		r.Delete("/{reservationId}", app.CancelReservationHandler)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMoviesHandler)
		r.Get("/{movieId}", app.GetMovieHandler)
		r.Get("/{movieId}/showtimes", app.GetMovieShowtimesHandler)

		r.With(app.requireAuthentication).Post("/", app.CreateMovieHandler)
		r.With(app.requireAuthentication).Patch("/{movieId}", app.UpdateMovieHandler)
		r.With(app.requireAuthentication).Delete("/{movieId}", app.DeleteMovieHandler)
	})

	r.Route("/theaters", func(r chi.Router) {
		r.Get("/", app.GetTheatersHandler)
		r.Get("/{theaterId}", app.GetTheaterHandler)
		r.Get("/{theaterId}/movies", app.GetTheaterMoviesHandler)

		r.With(app.requireAuthentication).Post("/", app.CreateTheaterHandler)
		r.With(app.requireAuthentication).Patch("/{theaterId}", app.UpdateTheaterHandler)
		r.With(app.requireAuthentication).Delete("/{theaterId}", app.DeleteTheaterHandler)

		r.Route("/{theaterId}/screens", func(r chi.Router) {
			r.Get("/", app.GetScreensHandler)
			r.Get("/{screenId}", app.GetScreenHandler)
			r.Get("/{screenId}/seats", app.GetSeatsHandler)
			r.Get("/{screenId}/slots", app.GetSlotsHandler)
			r.Get("/{screenId}/slots/{slotId}", app.GetSlotHandler)

			r.With(app.requireAuthentication).Post("/", app.CreateScreenHandler)
			r.With(app.requireAuthentication).Patch("/{screenId}", app.UpdateScreenHandler)
			r.With(app.requireAuthentication).Delete("/{screenId}", app.DeleteScreenHandler)
			r.With(app.requireAuthentication).Post("/{screenId}/seats", app.CreateSeatsHandler)
			r.With(app.requireAuthentication).Delete("/{screenId}/seats/{seatId}", app.DeleteSeatHandler)
			r.With(app.requireAuthentication).Post("/{screenId}/slots", app.CreateSlotHandler)
			r.With(app.requireAuthentication).Patch("/{screenId}/slots/{slotId}", app.UpdateSlotHandler)
			r.With(app.requireAuthentication).Delete("/{screenId}/slots/{slotId}", app.DeleteSlotHandler)
		})
	})

	r.Get("/slots/{slotId}/availability", app.GetSlotAvailabilityHandler)

	return r
}
