package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

func (app *Application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
