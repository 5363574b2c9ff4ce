package apperror

import "errors"

var (
	ErrGameEnded         = errors.New("game is ended")
	ErrGameNotEnded      = errors.New("game has not ended")
	ErrGameNotReady      = errors.New("players not initialized yet")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidSeat       = errors.New("invalid player index")
	ErrInvalidPit        = errors.New("invalid number for pit index")
	ErrEmptyPit          = errors.New("invalid move - pit is empty")
	ErrTooManyPlayers    = errors.New("both seats are already taken")
	ErrInvalidStoreDelta = errors.New("store delta must not be negative")
)
