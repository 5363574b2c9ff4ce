package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ayoayo-backend/internal/apperror"
)

const (
	PitsPerRow   = 6
	InitialSeeds = 4
	TotalSeeds   = 2 * PitsPerRow * InitialSeeds

	// SnapshotSize is both rows plus both stores.
	SnapshotSize = 2*PitsPerRow + 2
)

const (
	ResultNotEnded = "Game has not ended"
	ResultTie      = "It's a tie"
)

// Seat identifies one side of the board.
type Seat int

const (
	SeatA Seat = 0
	SeatB Seat = 1
)

func (s Seat) Valid() bool {
	return s == SeatA || s == SeatB
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	return 1 - s
}

func (s Seat) String() string {
	return fmt.Sprintf("player %d", int(s)+1)
}

// Board holds the pits of both rows, indexed by seat then pit.
type Board [2][PitsPerRow]int

func (b *Board) RowSum(seat Seat) int {
	sum := 0
	for _, seeds := range b[seat] {
		sum += seeds
	}
	return sum
}

func (b *Board) RowEmpty(seat Seat) bool {
	return b.RowSum(seat) == 0
}

func (b *Board) clearRow(seat Seat) {
	b[seat] = [PitsPerRow]int{}
}

// Snapshot is the flattened board: seat A pits, seat A store, seat B pits, seat B store.
type Snapshot [SnapshotSize]int

func (s Snapshot) Pits(seat Seat) []int {
	start := int(seat) * (PitsPerRow + 1)
	pits := make([]int, PitsPerRow)
	copy(pits, s[start:start+PitsPerRow])
	return pits
}

func (s Snapshot) Store(seat Seat) int {
	return s[int(seat)*(PitsPerRow+1)+PitsPerRow]
}

// Game is a single Ayoayo match. It is not safe for concurrent use.
type Game struct {
	ID      string     `json:"id"`
	Board   Board      `json:"board"`
	Players [2]*Player `json:"players"`
	Ended   bool       `json:"ended"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	for seat := range game.Board {
		for pit := range game.Board[seat] {
			game.Board[seat][pit] = InitialSeeds
		}
	}

	return game
}

// CreatePlayer - seats a new player: the first call takes seat A, the second seat B.
func (that *Game) CreatePlayer(name string) (*Player, error) {
	for _, seat := range []Seat{SeatA, SeatB} {
		if that.Players[seat] == nil {
			player := NewPlayer(name, seat)
			that.Players[seat] = player

			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrTooManyPlayers, name)
}

func (that *Game) Player(seat Seat) *Player {
	if !seat.Valid() {
		return nil
	}
	return that.Players[seat]
}

func (that *Game) IsReady() bool {
	return that.Players[SeatA] != nil && that.Players[SeatB] != nil
}

func (that *Game) IsEnded() bool {
	return that.Ended
}

func (that *Game) Snapshot() Snapshot {
	var snapshot Snapshot

	for _, seat := range []Seat{SeatA, SeatB} {
		start := int(seat) * (PitsPerRow + 1)
		copy(snapshot[start:start+PitsPerRow], that.Board[seat][:])

		if player := that.Players[seat]; player != nil {
			snapshot[start+PitsPerRow] = player.Store
		}
	}

	return snapshot
}

// TotalSeeds counts every seed on the board and in the stores.
func (that *Game) TotalSeeds() int {
	total := 0
	for _, seeds := range that.Snapshot() {
		total += seeds
	}
	return total
}

// Winner returns the player with the larger store, or nil on a tie.
func (that *Game) Winner() (*Player, error) {
	if !that.Ended {
		return nil, apperror.ErrGameNotEnded
	}

	if !that.IsReady() {
		return nil, apperror.ErrGameNotReady
	}

	first, second := that.Players[SeatA], that.Players[SeatB]

	switch {
	case first.Store > second.Store:
		return first, nil
	case second.Store > first.Store:
		return second, nil
	default:
		return nil, nil
	}
}

// ReturnWinner - describes the outcome of the game as text.
func (that *Game) ReturnWinner() string {
	winner, err := that.Winner()
	if err != nil {
		return ResultNotEnded
	}

	if winner == nil {
		return ResultTie
	}

	return fmt.Sprintf("Winner is %s: %s", winner.Seat, winner.Name)
}
