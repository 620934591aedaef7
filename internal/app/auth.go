package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50,alpha"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50,alpha"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"version"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input RegisterRequest

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

	user := domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing email")
			// do not return the info of existence of email to avoid user enumeration attacks
			app.badRequestResponse(w, r, fmt.Errorf("invalid input data"))
		default:
			logger.Error("failed to create user", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toUserResponse(&user)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
	if userId != 0 {
		resp := AlreadyLoggedInResponse{
			Message: "You are already logged in",
		}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			logger.Error("failed to get user by email during login", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !match {
		logger.Warn("login failed due to incorrect password")
		app.invalidCredentialsResponse(w, r)
		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
	if userId == 0 {
		app.notFoundResponse(w, r)
		return
	}

	app.sessionManager.Destroy(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		Id:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Version:   user.Version,
	}
}
