package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// ParseMove - parses a "row<separator>column" pair such as "1-1".
// Range checks are left to the game.
func ParseMove(line, separator string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(line), separator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidInput, parts[0])
	}

	column, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidInput, parts[1])
	}

	return row, column, nil
}

// lineReader feeds input lines to the session so that reads can be abandoned on cancellation.
type lineReader struct {
	lines chan string
	err   error // set before lines is closed
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	reader := &lineReader{lines: make(chan string)}

	go reader.run(ctx, bufio.NewScanner(r))

	return reader
}

func (that *lineReader) run(ctx context.Context, scanner *bufio.Scanner) {
	defer close(that.lines)

	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	that.err = scanner.Err()
}

// readLine - blocks until a line arrives, the input ends or ctx is done.
func (that *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if ok {
			return line, nil
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		if that.err != nil {
			return "", fmt.Errorf("failed to read input: %w", that.err)
		}

		return "", apperror.ErrInputClosed
	}
}
