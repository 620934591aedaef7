package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
)

type MovieRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
	Duration    int       `json:"duration" validate:"required,gt=0"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=10"`
}

type UpdateMovieRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Duration    *int       `json:"duration" validate:"omitempty,gt=0"`
	Rating      *float64   `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

type MovieResponse struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"releaseDate"`
	Duration    int       `json:"duration"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MoviesResponse struct {
	Movies   []MovieResponse  `json:"movies"`
	Metadata MetadataResponse `json:"metadata"`
}

type MetadataResponse struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

func (app *Application) GetMoviesHandler(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{Page: page, PageSize: pageSize}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := MoviesResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toMetadataResponse(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieHandler(w http.ResponseWriter, r *http.Request) {
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

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input MovieRequest

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

	movie := domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate,
		Duration:    input.Duration,
		Rating:      input.Rating,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input UpdateMovieRequest

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

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieId)
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

func toMovieResponse(movie *domain.Movie) MovieResponse {
	return MovieResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseDate: movie.ReleaseDate,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func toMovieResponses(movies []domain.Movie) []MovieResponse {
	resp := make([]MovieResponse, len(movies))
	for i := range movies {
		resp[i] = toMovieResponse(&movies[i])
	}

	return resp
}

func toMetadataResponse(metadata *domain.Metadata) MetadataResponse {
	return MetadataResponse{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
