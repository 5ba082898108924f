package internal

// Status tracks where a widget is in its load cycle. Widgets move
// Uninitialized → Loading → Ready on the happy path and land in Degraded
// when a fetch failed and fallback data is showing. A later successful
// load or mutation moves a Degraded widget back to Ready.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusReady         Status = "ready"
	StatusDegraded      Status = "degraded"
)
