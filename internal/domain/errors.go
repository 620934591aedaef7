package domain

import "errors"

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrDuplicateSeatNumber = errors.New("seat number already exists on this screen")
	ErrTheaterNameTaken    = errors.New("a theater with this name already exists")
)
