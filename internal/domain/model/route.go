package model

// RouteAction is the upsert decision taken for one order.
type RouteAction string

const (
	RouteActionCreated RouteAction = "created"
	RouteActionMoved   RouteAction = "moved"
	RouteActionExists  RouteAction = "already-exists"
	RouteActionSkipped RouteAction = "skipped"
)

// RouteResult reports where an order landed and what was done about it.
type RouteResult struct {
	Action RouteAction
	Column string
	CardID int64
}

// ImportDetail is the per-order outcome of a polled import.
type ImportDetail struct {
	OrderID     int64
	OrderNumber int64
	Action      RouteAction
	Column      string
	CardID      int64
	Error       string
}

// ImportSummary aggregates one polled import run.
type ImportSummary struct {
	Imported int
	Total    int
	Details  []ImportDetail
}
