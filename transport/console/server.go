package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/ayoayo-backend/internal/apperror"
	"github.com/rocketscienceinc/ayoayo-backend/internal/entity"
)

const helpText = `commands:
  play <player 1|2> <pit 1-6>  sow the seeds of a pit
  board                        show the board
  winner                       show the result
  help                         show this help
  quit, exit                   leave
`

var (
	errQuit   = errors.New("quit")
	errOutput = errors.New("failed to write output")
)

type uGame interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, seat entity.Seat, pit int) (*entity.Game, *entity.TurnResult, error)
	Winner(ctx context.Context, id string) (string, error)
}

// Server reads commands line by line and drives a single stored game.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	gameID string
	out    io.Writer

	// finished is the game as it ended; it may already be gone from storage.
	finished *entity.Game

	handlers map[string]func(ctx context.Context, message *Message) error
}

func New(logger *slog.Logger, uGame uGame, gameID string, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		gameID: gameID,
		out:    out,

		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["board"] = server.handleBoard
	server.handlers["winner"] = server.handleWinner
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - processes commands until EOF, quit, or context cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	if err := that.handleBoard(ctx, nil); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.finish(readErr)
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (that *Server) finish(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}

// handleLine - dispatches one command. Only output failures and quit stop the loop.
func (that *Server) handleLine(ctx context.Context, line string) error {
	log := that.logger.With("method", "handleLine")

	message, ok := parseMessage(line)
	if !ok {
		return nil
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.printf("unknown command: %s\n", message.Action)
	}

	if err := handler(ctx, message); err != nil {
		if errors.Is(err, errQuit) || errors.Is(err, errOutput) {
			return err
		}

		log.Debug("command failed", "action", message.Action, "error", err)

		return that.printf("%s\n", errorMessage(err))
	}

	return nil
}

func (that *Server) handlePlay(ctx context.Context, message *Message) error {
	if that.finished != nil {
		return apperror.ErrGameEnded
	}

	seat, pit, err := parseMove(message.Args)
	if err != nil {
		return err
	}

	game, result, err := that.uGame.MakeTurn(ctx, that.gameID, seat, pit)
	if err != nil {
		return err
	}

	if err = that.writeBoard(game); err != nil {
		return err
	}

	if result.Captured > 0 {
		if err = that.printf("%s captured %d seeds\n", seat, result.Captured); err != nil {
			return err
		}
	}

	if result.Ended {
		that.finished = game
		return that.printf("%s\n", game.ReturnWinner())
	}

	if result.ExtraTurn {
		return that.printf("%s take another turn\n", seat)
	}

	return nil
}

func (that *Server) handleBoard(ctx context.Context, _ *Message) error {
	if that.finished != nil {
		return that.writeBoard(that.finished)
	}

	game, err := that.uGame.GetGame(ctx, that.gameID)
	if err != nil {
		return err
	}

	return that.writeBoard(game)
}

func (that *Server) handleWinner(ctx context.Context, _ *Message) error {
	if that.finished != nil {
		return that.printf("%s\n", that.finished.ReturnWinner())
	}

	winner, err := that.uGame.Winner(ctx, that.gameID)
	if err != nil {
		return err
	}

	return that.printf("%s\n", winner)
}

func (that *Server) handleHelp(_ context.Context, _ *Message) error {
	return that.printf("%s", helpText)
}

func (that *Server) handleQuit(_ context.Context, _ *Message) error {
	return errQuit
}

func (that *Server) writeBoard(game *entity.Game) error {
	if err := printBoard(that.out, game); err != nil {
		return fmt.Errorf("%w: %w", errOutput, err)
	}

	return nil
}

func (that *Server) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("%w: %w", errOutput, err)
	}

	return nil
}
