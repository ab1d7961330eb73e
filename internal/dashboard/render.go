package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"goods/internal/domain/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const debugMaxBody = 200

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	info    = lipgloss.Color("#8B949E")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	errorStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(success)
	infoStyle   = lipgloss.NewStyle().Foreground(info)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lockedStyle = cellStyle.Foreground(danger)
	openStyle   = cellStyle.Foreground(success)
	actionStyle = cellStyle.Foreground(accent).Bold(true)
)

// Render draws the session: controls, messages, the goods table and the toggle actions.
func Render(w io.Writer, s *Session) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Available Goods Dashboard"))
	b.WriteString("\n")

	search := s.State.Search
	if search == "" {
		search = "(none)"
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("search: %s  items per page: %d  page: %d", search, s.State.Limit, s.State.Page)))
	b.WriteString("\n\n")

	if s.Notice != "" {
		b.WriteString(noticeStyle.Render(s.Notice))
		b.WriteString("\n")
	}
	if s.Err != "" {
		b.WriteString(errorStyle.Render(s.Err))
		b.WriteString("\n")
	}

	if len(s.State.Goods) == 0 {
		b.WriteString(infoStyle.Render("No goods to display."))
		b.WriteString("\n")
	} else {
		b.WriteString(goodsTable(s.State.Goods))
		b.WriteString("\n")
	}

	if s.Debug {
		b.WriteString(renderDebug(s))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func goodsTable(goods []models.Good) string {
	rows := make([][]string, 0, len(goods))
	for _, g := range goods {
		rows = append(rows, []string{
			strconv.FormatInt(g.ID, 10),
			g.Name,
			string(g.Status),
			fmt.Sprintf("[%s] toggle %d", g.Status.ToggleLabel(), g.ID),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "Name", "Status", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && row >= 0 && row < len(goods) && goods[row].Status == models.StatusLocked:
				return lockedStyle
			case col == 2:
				return openStyle
			case col == 3:
				return actionStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

func renderDebug(s *Session) string {
	body := s.LastResponse.Body
	if len(body) > debugMaxBody {
		body = body[:debugMaxBody]
	}
	lines := []string{
		"Debug info:",
		fmt.Sprintf("  Status code: %d", s.LastResponse.StatusCode),
		fmt.Sprintf("  Content-Type: %s", s.LastResponse.ContentType),
		fmt.Sprintf("  Response body (first %d chars): %s", debugMaxBody, string(body)),
	}
	return dimStyle.Render(strings.Join(lines, "\n")) + "\n"
}
