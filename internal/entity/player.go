package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ayoayo-backend/internal/apperror"
)

// Player is one seated participant and the seeds banked in their store.
type Player struct {
	Name  string `json:"name"`
	Seat  Seat   `json:"seat"`
	Store int    `json:"store"`
}

func NewPlayer(name string, seat Seat) *Player {
	return &Player{
		Name: name,
		Seat: seat,
	}
}

// AddToStore - adds seeds to the player's store.
func (that *Player) AddToStore(seeds int) error {
	if seeds < 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidStoreDelta, seeds)
	}

	that.bank(seeds)

	return nil
}

func (that *Player) bank(seeds int) {
	that.Store += seeds
}
