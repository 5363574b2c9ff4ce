package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ayoayo-backend/internal/entity"
)

const notInitialized = "Players not initialized yet"

// printBoard - writes both rows and stores, seat A first.
func printBoard(w io.Writer, game *entity.Game) error {
	var sb strings.Builder

	if !game.IsReady() {
		sb.WriteString(notInitialized + "\n")
	} else {
		snapshot := game.Snapshot()

		for _, seat := range []entity.Seat{entity.SeatA, entity.SeatB} {
			fmt.Fprintf(&sb, "player%d:\n", int(seat)+1)
			fmt.Fprintf(&sb, "store: %d\n", snapshot.Store(seat))
			sb.WriteString(formatRow(snapshot.Pits(seat)) + "\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}

	return nil
}

func formatRow(pits []int) string {
	cells := make([]string, len(pits))
	for i, seeds := range pits {
		cells[i] = strconv.Itoa(seeds)
	}

	return "[" + strings.Join(cells, ", ") + "]"
}
