// Package host defines the contracts between the bar visual and its host
// application: the tabular data view handed to the visual on every update,
// the selection and tooltip services the visual calls back into, and the
// color palette used for default category colors.
package host

// Viewport is the drawing area granted to the visual, in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Column carries the metadata of one column in the host's query result.
type Column struct {
	DisplayName string
	QueryName   string
}

// ObjectMap holds persisted formatting objects: object name -> property -> value.
type ObjectMap map[string]map[string]any

// CategoryColumn is the ordered list of category values plus optional
// per-row formatting overrides issued by the host's property pane.
type CategoryColumn struct {
	Source  Column
	Values  []any
	Objects []ObjectMap // sparse; nil entries mean no override for that row
}

// ValueColumn is the measure column. Highlights, when non-nil, marks the
// subset of rows that are in focus relative to another visual.
type ValueColumn struct {
	Source     Column
	Values     []any
	Highlights []any
}

// Categorical is the single data-view shape this visual supports:
// one category column and one value column.
type Categorical struct {
	Categories []*CategoryColumn
	Values     []*ValueColumn
}

// DataView is the full tabular snapshot from the host's data-query engine.
// Objects carries the persisted visual settings.
type DataView struct {
	Categorical *Categorical
	Objects     ObjectMap
}

// UpdateOptions is the payload of every host-driven update call.
type UpdateOptions struct {
	DataView *DataView
	Viewport Viewport
}

// EnumerateOptions selects which object group the host's property pane
// is asking about.
type EnumerateOptions struct {
	ObjectName string
}

// ObjectInstance is one entry in the host's property pane for an object group.
type ObjectInstance struct {
	ObjectName  string
	DisplayName string
	Properties  map[string]any
	Selector    SelectionID
}
