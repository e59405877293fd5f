package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/todocsv/internal/apiservice"
)

// maxListedFailures caps the failures printed in the summary. The log has
// the full list.
const maxListedFailures = 10

// RenderSummary writes a short boxed report of result to w. Colors are only
// used when w is a terminal.
func RenderSummary(w io.Writer, result *apiservice.SaveResult) error {
	if result == nil {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	var (
		title   = r.NewStyle().Bold(true)
		success = r.NewStyle().Foreground(lipgloss.Color("42"))
		failure = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		warn    = r.NewStyle().Foreground(lipgloss.Color("214"))
		muted   = r.NewStyle().Faint(true)
		box     = r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	)

	lines := []string{
		title.Render("Export summary"),
		muted.Render("dir: " + result.Dir),
		success.Render(fmt.Sprintf("✔ saved:  %d", result.SavedCount())),
	}
	if result.OK() {
		lines = append(lines, muted.Render("✖ failed: 0"))
	} else {
		lines = append(lines, failure.Render(fmt.Sprintf("✖ failed: %d", result.FailedCount())))
	}

	if len(result.DuplicateIDs) > 0 {
		ids := make([]string, len(result.DuplicateIDs))
		for i, id := range result.DuplicateIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		lines = append(lines, warn.Render("! duplicate ids: "+strings.Join(ids, ", ")))
	}

	for i, f := range result.Failures {
		if i == maxListedFailures {
			lines = append(lines, muted.Render(fmt.Sprintf("  ... and %d more", len(result.Failures)-i)))
			break
		}
		lines = append(lines, failure.Render(fmt.Sprintf("  id %d: %v", f.ID, f.Err)))
	}

	_, err := fmt.Fprintln(w, box.Render(strings.Join(lines, "\n")))
	return err
}
