package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrAlreadyOnRoster = errors.New("player already on roster")
	ErrNotOnRoster     = errors.New("player not on roster")
	ErrEmptyRoster     = errors.New("no players in roster")
)
