package host

// TooltipItem is one display-name/value row inside a tooltip.
type TooltipItem struct {
	DisplayName string
	Value       string
}

// TooltipShowArgs describes a tooltip to show or move. Coordinates are
// chart-relative pixels. Identities correlate the tooltip with the data it
// describes so the host can reuse or replace it.
type TooltipShowArgs struct {
	DataItems    []TooltipItem
	Identities   []string
	Coordinates  [2]float64
	IsTouchEvent bool
}

// TooltipHideArgs controls how a tooltip is dismissed.
type TooltipHideArgs struct {
	Immediately  bool
	IsTouchEvent bool
}

// TooltipService is the host's tooltip surface.
type TooltipService interface {
	Show(args TooltipShowArgs)
	Move(args TooltipShowArgs)
	Hide(args TooltipHideArgs)
}
