package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/metinatakli/theater-reservation-system/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShowtimesTestSuite struct {
	suite.Suite
	app         *Application
	movieRepo   *mocks.MockMovieRepo
	theaterRepo *mocks.MockTheaterRepo
	screenRepo  *mocks.MockScreenRepo
	slotRepo    *mocks.MockSlotRepo
}

func (s *ShowtimesTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)
	s.theaterRepo = new(mocks.MockTheaterRepo)
	s.screenRepo = new(mocks.MockScreenRepo)
	s.slotRepo = new(mocks.MockSlotRepo)
	s.app = newTestApplication(func(a *Application) {
		a.movieRepo = s.movieRepo
		a.theaterRepo = s.theaterRepo
		a.screenRepo = s.screenRepo
		a.slotRepo = s.slotRepo
	})
}

func TestShowtimesSuite(t *testing.T) {
	suite.Run(t, new(ShowtimesTestSuite))
}

func (s *ShowtimesTestSuite) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/movies/{movieId}/showtimes", s.app.GetMovieShowtimesHandler)
	r.Get("/theaters/{theaterId}/movies", s.app.GetTheaterMoviesHandler)

	return r
}

func (s *ShowtimesTestSuite) TestGetMovieShowtimesHandler() {
	start := time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	movie := &domain.Movie{ID: 7, Title: "Interstellar", Duration: 169}
	theater := domain.Theater{ID: 1, Name: "Grand Central", Location: "Downtown"}
	screen := domain.Screen{ID: 3, TheaterID: 1, Name: "Screen A"}

	tests := []struct {
		name           string
		url            string
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *MovieShowtimesResponse
	}{
		{
			name: "movie not found",
			url:  "/movies/99/showtimes",
			setupMock: func() {
				s.movieRepo.On("GetById", mock.Anything, 99).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "slots with missing screens are skipped",
			url:  "/movies/7/showtimes",
			setupMock: func() {
				s.movieRepo.On("GetById", mock.Anything, 7).Return(movie, nil)
				s.slotRepo.On("GetAllByMovie", mock.Anything, 7).Return([]domain.Slot{
					{ID: 5, ScreenID: 3, MovieID: 7, StartTime: start, EndTime: end},
					{ID: 6, ScreenID: 4, MovieID: 7, StartTime: start, EndTime: end},
				}, nil)
				// screen 4 was deleted between the two reads
				s.screenRepo.On("GetByIds", mock.Anything, []int{3, 4}).Return([]domain.Screen{screen}, nil)
				s.theaterRepo.On("GetByIds", mock.Anything, []int{1}).Return([]domain.Theater{theater}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &MovieShowtimesResponse{
				Movie: MovieResponse{Id: 7, Title: "Interstellar", Duration: 169},
				Theaters: []TheaterShowtimesItem{
					{
						Theater: TheaterResponse{Id: 1, Name: "Grand Central", Location: "Downtown"},
						Slots: []SlotWithScreenFields{
							{
								SlotResponse: SlotResponse{
									Id: 5, ScreenId: 3, MovieId: 7, StartTime: start, EndTime: end,
								},
								ScreenName: "Screen A",
							},
						},
					},
				},
			},
		},
		{
			name: "movie with no slots yields empty theater list",
			url:  "/movies/7/showtimes",
			setupMock: func() {
				s.movieRepo.On("GetById", mock.Anything, 7).Return(movie, nil)
				s.slotRepo.On("GetAllByMovie", mock.Anything, 7).Return([]domain.Slot{}, nil)
				s.screenRepo.On("GetByIds", mock.Anything, []int{}).Return([]domain.Screen{}, nil)
				s.theaterRepo.On("GetByIds", mock.Anything, []int{}).Return([]domain.Theater{}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &MovieShowtimesResponse{
				Movie:    MovieResponse{Id: 7, Title: "Interstellar", Duration: 169},
				Theaters: []TheaterShowtimesItem{},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.slotRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)

			s.router().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response MovieShowtimesResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
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

func (s *ShowtimesTestSuite) TestGetTheaterMoviesHandler() {
	start := time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	theater := &domain.Theater{ID: 1, Name: "Grand Central", Location: "Downtown"}
	screen := domain.Screen{ID: 3, TheaterID: 1, Name: "Screen A"}
	movie := domain.Movie{ID: 7, Title: "Interstellar", Duration: 169}

	tests := []struct {
		name           string
		url            string
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *TheaterMoviesResponse
	}{
		{
			name: "theater not found",
			url:  "/theaters/99/movies",
			setupMock: func() {
				s.theaterRepo.On("GetById", mock.Anything, 99).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "slots with missing movies are skipped",
			url:  "/theaters/1/movies",
			setupMock: func() {
				s.theaterRepo.On("GetById", mock.Anything, 1).Return(theater, nil)
				s.screenRepo.On("GetAllByTheater", mock.Anything, 1).Return([]domain.Screen{screen}, nil)
				s.slotRepo.On("GetAllByScreenIds", mock.Anything, []int{3}).Return([]domain.Slot{
					{ID: 5, ScreenID: 3, MovieID: 7, StartTime: start, EndTime: end},
					{ID: 6, ScreenID: 3, MovieID: 8, StartTime: start, EndTime: end},
				}, nil)
				// movie 8 was deleted between the two reads
				s.movieRepo.On("GetByIds", mock.Anything, []int{7, 8}).Return([]domain.Movie{movie}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &TheaterMoviesResponse{
				Theater: TheaterResponse{Id: 1, Name: "Grand Central", Location: "Downtown"},
				Movies: []MovieShowtimesItem{
					{
						Movie: MovieResponse{Id: 7, Title: "Interstellar", Duration: 169},
						Slots: []SlotWithScreenFields{
							{
								SlotResponse: SlotResponse{
									Id: 5, ScreenId: 3, MovieId: 7, StartTime: start, EndTime: end,
								},
								ScreenName: "Screen A",
							},
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.slotRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)

			s.router().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response TheaterMoviesResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
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
