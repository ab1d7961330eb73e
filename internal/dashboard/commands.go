package dashboard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const helpText = `commands:
  search <text>   filter by name (no text clears the filter)
  limit <n>       items per page (1-100)
  next | prev     move between pages
  refresh         back to page 1 and reload
  toggle <id>     lock or unlock a displayed good
  debug           show or hide response details
  help            this text
  quit            leave the dashboard
`

// Exec runs one command line against the session. It reports whether the user asked to quit.
// Failures are recorded on the session for display and also returned.
func (s *Session) Exec(ctx context.Context, line string) (bool, error) {
	s.Notice, s.Err = "", ""
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		s.Notice = helpText
		return false, nil
	case "search":
		return false, s.SetSearch(ctx, arg)
	case "limit":
		n, err := strconv.Atoi(arg)
		if err != nil {
			s.Err = fmt.Sprintf("limit needs a number, got %q", arg)
			return false, fmt.Errorf("parsing limit: %w", err)
		}
		return false, s.SetLimit(ctx, n)
	case "next", "n":
		return false, s.Next(ctx)
	case "prev", "previous", "p":
		return false, s.Prev(ctx)
	case "refresh", "r":
		return false, s.Refresh(ctx)
	case "toggle", "t":
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			s.Err = fmt.Sprintf("toggle needs a good id, got %q", arg)
			return false, fmt.Errorf("parsing id: %w", err)
		}
		return false, s.Toggle(ctx, id)
	case "debug":
		s.Debug = !s.Debug
		return false, nil
	default:
		s.Err = fmt.Sprintf("unknown command %q (try help)", cmd)
		return false, fmt.Errorf("unknown command %q", cmd)
	}
}

// Run loads the first page and then executes commands from in until quit or EOF,
// re-rendering the session after each one.
func Run(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	_ = s.Fetch(ctx)
	if err := Render(out, s); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(out, "> "); err != nil {
			return err
		}
		if !sc.Scan() {
			break
		}
		quit, _ := s.Exec(ctx, sc.Text())
		if quit {
			return nil
		}
		if err := Render(out, s); err != nil {
			return err
		}
	}
	return sc.Err()
}
