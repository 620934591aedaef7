package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type CreateReservationRequest struct {
	SlotId  int   `json:"slotId" validate:"required,gt=0"`
	SeatIds []int `json:"seatIds" validate:"required,min=1,max=10,unique,dive,gt=0"`
}

type ReservationResponse struct {
	Id         int       `json:"id"`
	SlotId     int       `json:"slotId"`
	SeatId     int       `json:"seatId"`
	ReservedAt time.Time `json:"reservedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

type UserReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Metadata     MetadataResponse      `json:"metadata"`
}

// CreateReservationHandler books one or more seats for a screening on behalf
// of the logged in user. Either every requested seat is reserved or none is:
// the repository performs the insert in a single transaction and reports a
// conflict when any seat is already taken.
func (app *Application) CreateReservationHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input CreateReservationRequest

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

	slot, err := app.slotRepo.GetById(r.Context(), input.SlotId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if slot.Started(time.Now()) {
		app.badRequestResponse(w, r, errors.New("screening has already started"))
		return
	}

	seats, err := app.seatRepo.GetByIdsAndScreen(r.Context(), input.SeatIds, slot.ScreenID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(seats) != len(input.SeatIds) {
		app.badRequestResponse(w, r, errors.New("one or more seats do not belong to the screening's screen"))
		return
	}

	userId := app.contextGetUserId(r)

	reservations, err := app.reservationRepo.CreateBatch(r.Context(), userId, slot.ID, input.SeatIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			logger.Warn("reservation conflict", "slotId", slot.ID)
			app.conflictResponse(w, r, err)
		default:
			logger.Error("failed to create reservations", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := ReservationsResponse{Reservations: toReservationResponses(reservations)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelReservationHandler releases a seat before the screening starts.
// A reservation belonging to another user is reported as not found rather
// than forbidden, so reservation ids cannot be probed.
func (app *Application) CancelReservationHandler(w http.ResponseWriter, r *http.Request) {
	reservationId, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	reservation, err := app.reservationRepo.GetById(r.Context(), reservationId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if reservation.UserID != userId {
		app.notFoundResponse(w, r)
		return
	}

	slot, err := app.slotRepo.GetById(r.Context(), reservation.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if slot.Started(time.Now()) {
		app.badRequestResponse(w, r, errors.New("cannot cancel a reservation after the screening has started"))
		return
	}

	err = app.reservationRepo.Delete(r.Context(), reservation.ID)
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

func (app *Application) GetReservationsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := domain.Pagination{Page: page, PageSize: pageSize}

	reservations, metadata, err := app.reservationRepo.GetAllByUser(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := UserReservationsResponse{
		Reservations: toReservationResponses(reservations),
		Metadata:     toMetadataResponse(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserReservationByIdHandler(w http.ResponseWriter, r *http.Request) {
	reservationId, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	reservation, err := app.reservationRepo.GetById(r.Context(), reservationId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if reservation.UserID != userId {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toReservationResponse(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toReservationResponse(reservation *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		Id:         reservation.ID,
		SlotId:     reservation.SlotID,
		SeatId:     reservation.SeatID,
		ReservedAt: reservation.ReservedAt,
		CreatedAt:  reservation.CreatedAt,
	}
}

func toReservationResponses(reservations []domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = toReservationResponse(&reservations[i])
	}

	return resp
}
