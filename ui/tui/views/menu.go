package views

import (
	"fmt"
	"math"

	"barlens/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type MenuView struct{}

func (v MenuView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("BARLENS // CATEGORICAL BAR VISUAL")

	var menuItems []string
	for i, option := range props.SourceNames {
		// Animation Logic
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		borderColor := BaseColor
		if selectionStrength > 0.1 || i == props.MenuCursor {
			borderColor = BrandColor
		}

		popOut := int(selectionStrength * 2)

		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginLeft(2 + popOut).
			Width(40)

		if i == props.MenuCursor {
			boxStyle = boxStyle.Bold(true).Foreground(lipgloss.Color("#FFF"))
		} else {
			boxStyle = boxStyle.Foreground(lipgloss.Color("#AAA"))
		}

		text := fmt.Sprintf("%02d. %s", i+1, option)
		renderedItem := boxStyle.Render(text)

		zoneID := fmt.Sprintf("source_%d", i)
		menuItems = append(menuItems, zone.Mark(zoneID, renderedItem))
	}

	menuList := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	menuContent := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(2).Foreground(BrandColor).Render("DATA SOURCES"),
		CopyStyle.Render("Pick the feed to chart."),
		menuList,
	)

	menuBox := MenuBoxStyle.Render(menuContent)

	if s.Err != nil {
		menuBox = lipgloss.JoinVertical(lipgloss.Left,
			menuBox,
			lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", s.Err)),
		)
	}

	controlsText := lipgloss.NewStyle().Foreground(lipgloss.Color("#555")).Render("\n[↑/↓] Navigate • [Enter] Select • [Q] Quit")
	footer := lipgloss.NewStyle().PaddingLeft(2).Render(controlsText)

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuBox,
		footer,
	)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

var (
	BrandColor = lipgloss.Color("#01B8AA")
	BaseColor  = lipgloss.Color("#444")

	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
			Padding(1, 0).
			MarginTop(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginBottom(1).
			PaddingLeft(2)
)
