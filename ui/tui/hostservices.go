package tui

import (
	"fmt"

	"barlens/internal/host"
	"barlens/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// SelectionStore is the host-side selection manager: it owns the current
// selection and resolves every Select by invoking the done callback with
// the updated list.
type SelectionStore struct {
	selected []host.SelectionID
}

// NewSelectionStore returns an empty selection.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{}
}

// Select toggles id. With multiSelect off the selection collapses to the
// toggled id alone.
func (s *SelectionStore) Select(id host.SelectionID, multiSelect bool, done func(selected []host.SelectionID)) {
	if id != nil {
		if host.ContainsID(s.selected, id) {
			kept := s.selected[:0]
			for _, existing := range s.selected {
				if !existing.Equal(id) {
					kept = append(kept, existing)
				}
			}
			s.selected = kept
		} else {
			if !multiSelect {
				s.selected = nil
			}
			s.selected = append(s.selected, id)
		}
	}
	if done != nil {
		done(s.Selected())
	}
}

// Selected returns a copy of the current selection.
func (s *SelectionStore) Selected() []host.SelectionID {
	out := make([]host.SelectionID, len(s.selected))
	copy(out, s.selected)
	return out
}

// Count returns the number of selected identities.
func (s *SelectionStore) Count() int { return len(s.selected) }

// Clear empties the selection.
func (s *SelectionStore) Clear() { s.selected = nil }

// TooltipPanel is the host tooltip service. Terminal cells are too coarse
// for a floating tooltip, so the panel renders the current tooltip items in
// a card beside the chart, tagged with the anchor coordinates it was given.
type TooltipPanel struct {
	visible bool
	args    host.TooltipShowArgs
}

// NewTooltipPanel returns a hidden panel.
func NewTooltipPanel() *TooltipPanel {
	return &TooltipPanel{}
}

func (t *TooltipPanel) Show(args host.TooltipShowArgs) {
	t.visible = true
	t.args = args
}

func (t *TooltipPanel) Move(args host.TooltipShowArgs) {
	t.visible = true
	t.args = args
}

func (t *TooltipPanel) Hide(args host.TooltipHideArgs) {
	t.visible = false
}

// Visible reports whether a tooltip is showing.
func (t *TooltipPanel) Visible() bool { return t.visible }

// View renders the tooltip card, or "" when hidden.
func (t *TooltipPanel) View() string {
	if !t.visible {
		return ""
	}
	lines := make([]string, 0, len(t.args.DataItems)+1)
	for _, item := range t.args.DataItems {
		lines = append(lines, fmt.Sprintf("%s %s", styles.StatusStyle.Render(item.DisplayName), item.Value))
	}
	lines = append(lines, styles.FooterStyle.Render(
		fmt.Sprintf("@ %.0f,%.0f", t.args.Coordinates[0], t.args.Coordinates[1])))
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
