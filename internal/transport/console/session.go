package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	DefaultPrompt    = "Make your move (row-column) [e.g. 0-0]:"
	DefaultSeparator = "-"

	invalidInputMessage = "Invalid input"
	rematchPrompt       = "Play again? [y/N]:"
)

type Options struct {
	Prompt    string
	Separator string
	Rematch   bool
}

// Engine is the game a session drives.
type Engine interface {
	MakeMove(row, column int) error
	Winner() entity.Mark
	IsGameOver() bool
	Status() tictactoe.Status
	Render() string
	Reset()
}

// Session drives a game from a line-oriented reader and prints its state to a writer.
type Session struct {
	logger *slog.Logger
	game   Engine
	in     io.Reader
	out    io.Writer
	opts   Options

	input *lineReader
	score Scoreboard
}

func NewSession(logger *slog.Logger, game Engine, in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}

	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	return &Session{
		logger: logger.With("component", "console"),
		game:   game,
		in:     in,
		out:    out,
		opts:   opts,
	}
}

// Run - plays rounds until the game is over, or until the players decline a rematch.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.input = newLineReader(ctx, that.in)

	for {
		winner, err := that.playRound(ctx)
		if err != nil {
			return err
		}

		that.score.Record(winner)

		if !that.opts.Rematch {
			return nil
		}

		if err = that.writeLine(that.score.String()); err != nil {
			return err
		}

		again, err := that.askRematch(ctx)
		if err != nil {
			return err
		}

		if !again {
			log.Info("session finished", "rounds", that.score.Rounds())
			return nil
		}

		that.game.Reset()
	}
}

// Scoreboard - returns the results recorded so far.
func (that *Session) Scoreboard() Scoreboard {
	return that.score
}

// playRound - renders the board before every turn and once more when the game is over.
func (that *Session) playRound(ctx context.Context) (entity.Mark, error) {
	log := that.logger.With("method", "playRound", "game_id", pkg.GenerateGameID())
	log.Debug("game started")

	for {
		if err := that.write(that.game.Render() + "\n"); err != nil {
			return entity.Empty, err
		}

		if that.game.IsGameOver() {
			break
		}

		if err := that.acceptMove(ctx, log); err != nil {
			return entity.Empty, err
		}
	}

	winner := that.game.Winner()
	if winner.IsPlayer() {
		log.Info("game won", "status", that.game.Status(), "winner", winner.String())
	} else {
		log.Info("game drawn", "status", that.game.Status())
	}

	return winner, nil
}

// acceptMove - prompts until the game accepts a move.
func (that *Session) acceptMove(ctx context.Context, log *slog.Logger) error {
	for {
		if err := that.write(that.opts.Prompt); err != nil {
			return err
		}

		line, err := that.input.readLine(ctx)
		if err != nil {
			return err
		}

		row, column, err := ParseMove(line, that.opts.Separator)
		if err != nil {
			log.Debug("move rejected", "input", line, "error", err)

			if err = that.writeLine(invalidInputMessage); err != nil {
				return err
			}

			continue
		}

		if err = that.game.MakeMove(row, column); err != nil {
			if !isMoveError(err) {
				return fmt.Errorf("failed to make move: %w", err)
			}

			log.Debug("move rejected", "row", row, "column", column, "error", err)

			if err = that.writeLine(err.Error()); err != nil {
				return err
			}

			continue
		}

		log.Debug("move accepted", "row", row, "column", column)

		return nil
	}
}

func (that *Session) askRematch(ctx context.Context) (bool, error) {
	if err := that.write(rematchPrompt); err != nil {
		return false, err
	}

	line, err := that.input.readLine(ctx)
	if errors.Is(err, apperror.ErrInputClosed) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (that *Session) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Session) writeLine(text string) error {
	return that.write(text + "\n")
}

func isMoveError(err error) bool {
	return errors.Is(err, apperror.ErrPositionOutOfBounds) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameOver)
}
