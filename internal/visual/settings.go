package visual

import "barlens/internal/host"

// XAxisSettings controls the category axis. Show toggles tick label
// visibility; the axis line itself is always drawn.
type XAxisSettings struct {
	Show bool
}

// Settings is the persisted visual configuration, reparsed on every update.
type Settings struct {
	XAxis XAxisSettings
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{XAxis: XAxisSettings{Show: true}}
}

// ParseSettings reads settings from the data view's persisted objects,
// falling back to defaults for anything absent or mistyped.
func ParseSettings(dv *host.DataView) Settings {
	s := DefaultSettings()
	if dv == nil || dv.Objects == nil {
		return s
	}
	if raw, ok := dv.Objects[objectXAxis][propShow]; ok {
		if show, ok := raw.(bool); ok {
			s.XAxis.Show = show
		}
	}
	return s
}
