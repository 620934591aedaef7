package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type SlotRequest struct {
	MovieId   int       `json:"movieId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
}

type UpdateSlotRequest struct {
	MovieId   *int       `json:"movieId" validate:"omitempty,gt=0"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

type SlotResponse struct {
	Id        int       `json:"id"`
	ScreenId  int       `json:"screenId"`
	MovieId   int       `json:"movieId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

type SlotAvailabilityResponse struct {
	SlotId    int            `json:"slotId"`
	Available []SeatResponse `json:"available"`
	Reserved  []SeatResponse `json:"reserved"`
}

func (app *Application) GetSlotsHandler(w http.ResponseWriter, r *http.Request) {
	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return
	}

	slots, err := app.slotRepo.GetAllByScreen(r.Context(), screen.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := SlotsResponse{Slots: toSlotResponses(slots)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSlotHandler(w http.ResponseWriter, r *http.Request) {
	slot, ok := app.slotFromRequest(w, r)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toSlotResponse(slot), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateSlotHandler(w http.ResponseWriter, r *http.Request) {
	var input SlotRequest

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

	if _, err := app.movieRepo.GetById(r.Context(), input.MovieId); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	slot := domain.Slot{
		ScreenID:  screen.ID,
		MovieID:   input.MovieId,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}

	err = app.slotRepo.Create(r.Context(), &slot)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toSlotResponse(&slot), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateSlotHandler(w http.ResponseWriter, r *http.Request) {
	var input UpdateSlotRequest

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

	slot, ok := app.slotFromRequest(w, r)
	if !ok {
		return
	}

	if input.MovieId != nil {
		if _, err := app.movieRepo.GetById(r.Context(), *input.MovieId); err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		slot.MovieID = *input.MovieId
	}
	if input.StartTime != nil {
		slot.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		slot.EndTime = *input.EndTime
	}

	if !slot.EndTime.After(slot.StartTime) {
		app.badRequestResponse(w, r, errors.New("endTime must be after startTime"))
		return
	}

	err = app.slotRepo.Update(r.Context(), slot)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSlotResponse(slot), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteSlotHandler(w http.ResponseWriter, r *http.Request) {
	slot, ok := app.slotFromRequest(w, r)
	if !ok {
		return
	}

	err := app.slotRepo.Delete(r.Context(), slot.ID)
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

// GetSlotAvailabilityHandler reports, for one screening, which seats of the
// screen are still free and which are already taken. The two lists are
// disjoint and together cover the screen's whole roster.
func (app *Application) GetSlotAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	slotId, err := app.readIDParam(r, "slotId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	slot, err := app.slotRepo.GetById(r.Context(), slotId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats, err := app.seatRepo.GetAllByScreen(r.Context(), slot.ScreenID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	reservations, err := app.reservationRepo.GetAllBySlot(r.Context(), slot.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	available, reserved := domain.PartitionSeats(seats, reservations)

	resp := SlotAvailabilityResponse{
		SlotId:    slot.ID,
		Available: toSeatResponses(available),
		Reserved:  toSeatResponses(reserved),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) slotFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Slot, bool) {
	screen, ok := app.screenFromRequest(w, r)
	if !ok {
		return nil, false
	}

	slotId, err := app.readIDParam(r, "slotId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	slot, err := app.slotRepo.GetByIdAndScreen(r.Context(), slotId, screen.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return slot, true
}

func toSlotResponse(slot *domain.Slot) SlotResponse {
	return SlotResponse{
		Id:        slot.ID,
		ScreenId:  slot.ScreenID,
		MovieId:   slot.MovieID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
	}
}

func toSlotResponses(slots []domain.Slot) []SlotResponse {
	resp := make([]SlotResponse, len(slots))
	for i := range slots {
		resp[i] = toSlotResponse(&slots[i])
	}

	return resp
}
