package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type ScreenRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type ScreenResponse struct {
	Id        int       `json:"id"`
	TheaterId int       `json:"theaterId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ScreensResponse struct {
	Screens []ScreenResponse `json:"screens"`
}

func (app *Application) GetScreensHandler(w http.ResponseWriter, r *http.Request) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.theaterRepo.GetById(r.Context(), theaterId); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	screens, err := app.screenRepo.GetAllByTheater(r.Context(), theaterId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := ScreensResponse{Screens: toScreenResponses(screens)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreenHandler(w http.ResponseWriter, r *http.Request) {
	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toScreenResponse(screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreenHandler(w http.ResponseWriter, r *http.Request) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input ScreenRequest

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

	if _, err := app.theaterRepo.GetById(r.Context(), theaterId); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	screen := domain.Screen{
		TheaterID: theaterId,
		Name:      input.Name,
	}

	err = app.screenRepo.Create(r.Context(), &screen)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toScreenResponse(&screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateScreenHandler(w http.ResponseWriter, r *http.Request) {
	var input ScreenRequest

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

	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return
	}

	screen.Name = input.Name

	err = app.screenRepo.Update(r.Context(), screen)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toScreenResponse(screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreenHandler(w http.ResponseWriter, r *http.Request) {
	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return
	}

	err := app.screenRepo.Delete(r.Context(), screen.ID)
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

// screenFromRequest resolves the {theaterId}/{screenId} pair from the URL,
// writing the error response itself when the pair does not resolve.
func (app *Application) screenFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Screen, bool) {
	theaterId, err := app.readIDParam(r, "theaterId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	screenId, err := app.readIDParam(r, "screenId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	screen, err := app.screenRepo.GetByIdAndTheater(r.Context(), screenId, theaterId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return screen, true
}

func toScreenResponse(screen *domain.Screen) ScreenResponse {
	return ScreenResponse{
		Id:        screen.ID,
		TheaterId: screen.TheaterID,
		Name:      screen.Name,
		CreatedAt: screen.CreatedAt,
		UpdatedAt: screen.UpdatedAt,
	}
}

func toScreenResponses(screens []domain.Screen) []ScreenResponse {
	resp := make([]ScreenResponse, len(screens))
	for i := range screens {
		resp[i] = toScreenResponse(&screens[i])
	}

	return resp
}
