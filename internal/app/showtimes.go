package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type MovieShowtimesResponse struct {
	Movie    MovieResponse          `json:"movie"`
	Theaters []TheaterShowtimesItem `json:"theaters"`
}

type TheaterShowtimesItem struct {
	Theater TheaterResponse        `json:"theater"`
	Slots   []SlotWithScreenFields `json:"slots"`
}

type TheaterMoviesResponse struct {
	Theater TheaterResponse      `json:"theater"`
	Movies  []MovieShowtimesItem `json:"movies"`
}

type MovieShowtimesItem struct {
	Movie MovieResponse          `json:"movie"`
	Slots []SlotWithScreenFields `json:"slots"`
}

type SlotWithScreenFields struct {
	SlotResponse
	ScreenName string `json:"screenName"`
}

// GetMovieShowtimesHandler lists where and when a movie is playing, grouped
// by theater in the order of each theater's earliest slot.
func (app *Application) GetMovieShowtimesHandler(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	slots, err := app.slotRepo.GetAllByMovie(r.Context(), movie.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	screens, err := app.screenRepo.GetByIds(r.Context(), collectScreenIds(slots))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	theaterIds := make([]int, 0, len(screens))
	seen := make(map[int]bool, len(screens))
	for _, screen := range screens {
		if !seen[screen.TheaterID] {
			seen[screen.TheaterID] = true
			theaterIds = append(theaterIds, screen.TheaterID)
		}
	}

	theaters, err := app.theaterRepo.GetByIds(r.Context(), theaterIds)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	groups := domain.GroupSlotsByTheater(slots, screens, theaters)

	resp := MovieShowtimesResponse{
		Movie:    toMovieResponse(movie),
		Theaters: make([]TheaterShowtimesItem, len(groups)),
	}

	for i, group := range groups {
		resp.Theaters[i] = TheaterShowtimesItem{
			Theater: toTheaterResponse(&group.Theater),
			Slots:   toSlotWithScreenFields(group.Slots),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetTheaterMoviesHandler lists what a theater is screening, grouped by movie
// in the order of each movie's earliest slot.
func (app *Application) GetTheaterMoviesHandler(w http.ResponseWriter, r *http.Request) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), theaterId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	screens, err := app.screenRepo.GetAllByTheater(r.Context(), theater.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	screenIds := make([]int, len(screens))
	for i, screen := range screens {
		screenIds[i] = screen.ID
	}

	slots, err := app.slotRepo.GetAllByScreenIds(r.Context(), screenIds)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movieIds := make([]int, 0, len(slots))
	seen := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if !seen[slot.MovieID] {
			seen[slot.MovieID] = true
			movieIds = append(movieIds, slot.MovieID)
		}
	}

	movies, err := app.movieRepo.GetByIds(r.Context(), movieIds)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	groups := domain.GroupSlotsByMovie(slots, screens, movies)

	resp := TheaterMoviesResponse{
		Theater: toTheaterResponse(theater),
		Movies:  make([]MovieShowtimesItem, len(groups)),
	}

	for i, group := range groups {
		resp.Movies[i] = MovieShowtimesItem{
			Movie: toMovieResponse(&group.Movie),
			Slots: toSlotWithScreenFields(group.Slots),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func collectScreenIds(slots []domain.Slot) []int {
	ids := make([]int, 0, len(slots))
	seen := make(map[int]bool, len(slots))

	for _, slot := range slots {
		if !seen[slot.ScreenID] {
			seen[slot.ScreenID] = true
			ids = append(ids, slot.ScreenID)
		}
	}

	return ids
}

func toSlotWithScreenFields(slots []domain.SlotWithScreen) []SlotWithScreenFields {
	resp := make([]SlotWithScreenFields, len(slots))
	for i, s := range slots {
		resp[i] = SlotWithScreenFields{
			SlotResponse: toSlotResponse(&s.Slot),
			ScreenName:   s.Screen.Name,
		}
	}

	return resp
}
