package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ayoayo-backend/internal/apperror"
)

// TurnResult describes the board after an accepted move.
type TurnResult struct {
	Board     Snapshot `json:"board"`
	Seat      Seat     `json:"seat"`
	ExtraTurn bool     `json:"extra_turn"`
	Captured  int      `json:"captured,omitempty"`
	Ended     bool     `json:"ended"`
	Next      Seat     `json:"next"`
}

// PlayTurn - sows the seeds of the given pit (1-6) for the given seat.
// Rejected moves leave the game untouched.
func (that *Game) PlayTurn(seat Seat, pitNumber int) (*TurnResult, error) {
	if err := that.validateTurn(seat, pitNumber); err != nil {
		return nil, err
	}

	result := &TurnResult{Seat: seat, Next: seat.Other()}

	lastSeat, lastPit, inStore := that.sow(seat, pitNumber-1)
	if inStore {
		result.ExtraTurn = true
		result.Next = seat
	} else {
		result.Captured = that.capture(seat, lastSeat, lastPit)
	}

	result.Ended = that.checkGameEnd()
	result.Board = that.Snapshot()

	return result, nil
}

// validateTurn - checks the move before anything is mutated.
func (that *Game) validateTurn(seat Seat, pitNumber int) error {
	if that.Ended {
		return apperror.ErrGameEnded
	}

	if !that.IsReady() {
		return apperror.ErrGameNotReady
	}

	if !seat.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSeat, int(seat))
	}

	if pitNumber < 1 || pitNumber > PitsPerRow {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPit, pitNumber)
	}

	if that.Board[seat][pitNumber-1] == 0 {
		return fmt.Errorf("%w: pit %d", apperror.ErrEmptyPit, pitNumber)
	}

	return nil
}

// sow - empties the pit and drops its seeds one by one counter-clockwise.
// The acting seat's store is sown into, the opponent's store is skipped.
// It returns where the last seed landed.
func (that *Game) sow(seat Seat, pit int) (Seat, int, bool) {
	seeds := that.Board[seat][pit]
	that.Board[seat][pit] = 0

	currentSeat, currentPit := seat, pit

	for seeds > 0 {
		currentPit++

		if currentPit == PitsPerRow {
			if currentSeat == seat {
				that.Players[seat].bank(1)
				seeds--

				if seeds == 0 {
					return currentSeat, currentPit, true
				}
			}

			currentSeat = currentSeat.Other()
			currentPit = -1

			continue
		}

		that.Board[currentSeat][currentPit]++
		seeds--
	}

	return currentSeat, currentPit, false
}

// capture - takes the opposite pit when the last seed landed in an empty pit of the acting row.
// It returns the number of seeds moved into the store.
func (that *Game) capture(seat, lastSeat Seat, lastPit int) int {
	if lastSeat != seat || that.Board[seat][lastPit] != 1 {
		return 0
	}

	opponent := seat.Other()
	opposite := PitsPerRow - 1 - lastPit

	captured := that.Board[opponent][opposite]
	if captured == 0 {
		return 0
	}

	total := captured + 1

	that.Board[seat][lastPit] = 0
	that.Board[opponent][opposite] = 0
	that.Players[seat].bank(total)

	return total
}

// checkGameEnd - ends the game once either row is empty and sweeps each row into its own store.
func (that *Game) checkGameEnd() bool {
	if !that.Board.RowEmpty(SeatA) && !that.Board.RowEmpty(SeatB) {
		return false
	}

	that.Ended = true

	for _, seat := range []Seat{SeatA, SeatB} {
		that.Players[seat].bank(that.Board.RowSum(seat))
		that.Board.clearRow(seat)
	}

	return true
}
