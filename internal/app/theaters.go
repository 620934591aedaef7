package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type TheaterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Location string `json:"location" validate:"required,min=2,max=200"`
}

type UpdateTheaterRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Location *string `json:"location" validate:"omitempty,min=2,max=200"`
}

type TheaterResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TheatersResponse struct {
	Theaters []TheaterResponse `json:"theaters"`
}

func (app *Application) GetTheatersHandler(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := TheatersResponse{Theaters: toTheaterResponses(theaters)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheaterHandler(w http.ResponseWriter, r *http.Request) {
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

	err = app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheaterHandler(w http.ResponseWriter, r *http.Request) {
	var input TheaterRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theater := domain.Theater{
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theaterRepo.Create(r.Context(), &theater)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheaterNameTaken):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheaterResponse(&theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateTheaterHandler(w http.ResponseWriter, r *http.Request) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input UpdateTheaterRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
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

	if input.Name != nil {
		theater.Name = *input.Name
	}
	if input.Location != nil {
		theater.Location = *input.Location
	}

	err = app.theaterRepo.Update(r.Context(), theater)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheaterNameTaken):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteTheaterHandler(w http.ResponseWriter, r *http.Request) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.theaterRepo.Delete(r.Context(), theaterId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTheaterResponse(theater *domain.Theater) TheaterResponse {
	return TheaterResponse{
		Id:        theater.ID,
		Name:      theater.Name,
		Location:  theater.Location,
		CreatedAt: theater.CreatedAt,
		UpdatedAt: theater.UpdatedAt,
	}
}

func toTheaterResponses(theaters []domain.Theater) []TheaterResponse {
	resp := make([]TheaterResponse, len(theaters))
	for i := range theaters {
		resp[i] = toTheaterResponse(&theaters[i])
	}

	return resp
}
