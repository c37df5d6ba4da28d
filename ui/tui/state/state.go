package state

import (
	"time"

	"barlens/internal/host"
)

type Page int

const (
	PageMenu  Page = iota
	PageChart // the bar chart visual
)

// AppState holds the current snapshot of the host application.
type AppState struct {
	DataView    *host.DataView
	SourceName  string
	LastUpdate  time.Time
	Err         error
	CurrentPage Page
}
