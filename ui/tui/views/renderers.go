package views

import (
	"barlens/ui/tui/state"
)

func RenderMenu(s state.AppState, props ViewProps) string {
	v := MenuView{}
	return v.Render(s, props)
}

func RenderChart(s state.AppState, props ViewProps) string {
	v := ChartView{}
	return v.Render(s, props)
}
