package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type CreateSeatsRequest struct {
	SeatNumbers []int `json:"seatNumbers" validate:"required,min=1,max=500,unique,dive,gt=0"`
}

type SeatResponse struct {
	Id         int `json:"id"`
	SeatNumber int `json:"seatNumber"`
}

type SeatsResponse struct {
	Seats []SeatResponse `json:"seats"`
}

func (app *Application) GetSeatsHandler(w http.ResponseWriter, r *http.Request) {
	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return
	}

	seats, err := app.seatRepo.GetAllByScreen(r.Context(), screen.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := SeatsResponse{Seats: toSeatResponses(seats)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateSeatsHandler(w http.ResponseWriter, r *http.Request) {
	var input CreateSeatsRequest

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

	seats, err := app.seatRepo.CreateBatch(r.Context(), screen.ID, input.SeatNumbers)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSeatNumber):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := SeatsResponse{Seats: toSeatResponses(seats)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteSeatHandler(w http.ResponseWriter, r *http.Request) {
	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return
	}

	seatId, err := app.readIDParam(r, "seatId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetByIdAndScreen(r.Context(), seatId, screen.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.seatRepo.Delete(r.Context(), seat.ID)
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

func toSeatResponse(seat *domain.Seat) SeatResponse {
	return SeatResponse{
		Id:         seat.ID,
		SeatNumber: seat.SeatNumber,
	}
}

func toSeatResponses(seats []domain.Seat) []SeatResponse {
	resp := make([]SeatResponse, len(seats))
	for i := range seats {
		resp[i] = toSeatResponse(&seats[i])
	}

	return resp
}
