package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/metinatakli/theater-reservation-system/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	app      *Application
	userRepo *mocks.MockUserRepo
}

func (s *AuthTestSuite) SetupTest() {
	s.userRepo = new(mocks.MockUserRepo)
	s.app = newTestApplication(func(a *Application) {
		a.userRepo = s.userRepo
	})
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.app.sessionManager.LoadAndSave)
	r.Post("/users", s.app.RegisterUser)
	r.Post("/sessions", s.app.Login)
	r.Delete("/sessions", s.app.Logout)

	return r
}

func (s *AuthTestSuite) TestRegisterUser() {
	validInput := RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "Sup3rSecret!",
	}

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "weak password",
			body: RegisterRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Password:  "password",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantErrMessage: "must be at least 8 characters long and include at least one uppercase letter, " +
				"one lowercase letter, one number, and one special character (!@#$%^&*).",
		},
		{
			name: "invalid email",
			body: RegisterRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "not-an-email",
				Password:  "Sup3rSecret!",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a valid email address",
		},
		{
			name: "existing email does not leak",
			body: validInput,
			setupMock: func() {
				s.userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUserAlreadyExists)
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid input data",
		},
		{
			name: "database error",
			body: validInput,
			setupMock: func() {
				s.userRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "successful registration",
			body: validInput,
			setupMock: func() {
				s.userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					user := args.Get(1).(*domain.User)
					user.ID = 1
					user.Version = 1
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.userRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/users", tt.body)

			s.router().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var response UserResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				s.Equal(1, response.Id)
				s.Equal("jane@example.com", response.Email)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *AuthTestSuite) TestLogin() {
	existingUser := func() *domain.User {
		user := &domain.User{ID: 1, Email: "jane@example.com"}
		err := user.Password.Set("Sup3rSecret!")
		s.Require().NoError(err)

		return user
	}

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "malformed email is treated as invalid credentials",
			body:           LoginRequest{Email: "not-an-email", Password: "whatever"},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			body: LoginRequest{Email: "ghost@example.com", Password: "Sup3rSecret!"},
			setupMock: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "incorrect password",
			body: LoginRequest{Email: "jane@example.com", Password: "WrongPass1!"},
			setupMock: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
					Return(existingUser(), nil)
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "successful login",
			body: LoginRequest{Email: "jane@example.com", Password: "Sup3rSecret!"},
			setupMock: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
					Return(existingUser(), nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.userRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/sessions", tt.body)

			s.router().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *AuthTestSuite) TestLogout() {
	s.Run("logout without a session is not found", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodDelete, "/sessions", nil)

		s.router().ServeHTTP(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("logout destroys the session", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodDelete, "/sessions", nil)
		r = setupTestSession(s.T(), s.app, r, 1)

		s.router().ServeHTTP(w, r)

		s.Equal(http.StatusNoContent, w.Code)
	})
}
