package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ayoayo-backend/internal/apperror"
	"github.com/rocketscienceinc/ayoayo-backend/internal/entity"
)

var ErrBadCommand = errors.New("usage: play <player 1|2> <pit 1-6>")

// Message is one parsed input line.
type Message struct {
	Action string
	Args   []string
}

func parseMessage(line string) (*Message, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, false
	}

	return &Message{Action: fields[0], Args: fields[1:]}, true
}

// parseMove - reads the user-facing player (1 or 2) and pit numbers.
func parseMove(args []string) (entity.Seat, int, error) {
	if len(args) != 2 {
		return 0, 0, ErrBadCommand
	}

	player, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: player %q", ErrBadCommand, args[0])
	}

	pit, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: pit %q", ErrBadCommand, args[1])
	}

	return entity.Seat(player - 1), pit, nil
}

var moveErrors = []error{
	apperror.ErrGameEnded,
	apperror.ErrGameNotReady,
	apperror.ErrInvalidSeat,
	apperror.ErrInvalidPit,
	apperror.ErrEmptyPit,
	ErrBadCommand,
}

// errorMessage - text shown to the player for a rejected command.
func errorMessage(err error) string {
	for _, known := range moveErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}
