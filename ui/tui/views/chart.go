package views

import (
	"fmt"

	"barlens/ui/tui/state"
	"barlens/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// ChartOriginY is the row where the chart grid starts on the chart page.
// The mouse-to-scene routing in the controller depends on this layout:
// header on row 0, status on row 1, chart from row 2.
const ChartOriginY = 2

// ChartOriginX is the column where the chart grid starts.
const ChartOriginX = 0

type ChartView struct{}

func (v ChartView) Render(s state.AppState, props ViewProps) string {
	updated := "waiting for data"
	if !s.LastUpdate.IsZero() {
		updated = "updated " + s.LastUpdate.Format("15:04:05")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		props.SpinnerView,
		styles.StatusStyle.Render(" barlens "),
		fmt.Sprintf("source: %s · %s", s.SourceName, updated),
	)

	var status string
	switch {
	case s.Err != nil:
		status = styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", s.Err))
	default:
		labels := "on"
		if !props.XAxisShow {
			labels = "off"
		}
		highlight := "off"
		if props.HighlightOn {
			highlight = "on"
		}
		status = styles.FooterStyle.Render(fmt.Sprintf(
			"%d selected · labels %s · highlight %s", props.SelectionCount, labels, highlight))
	}

	body := props.ChartView
	if props.TooltipView != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, props.TooltipView)
	}

	footer := styles.FooterStyle.Render(
		"[click] select · [x] axis labels · [h] highlight · [c] clear · [r] refresh · [b] back · [q] quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		status,
		body,
		footer,
	)
}
