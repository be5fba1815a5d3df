package dto

// RouteResponse reports where a routed order landed.
type RouteResponse struct {
	Action string `json:"action"`
	Column string `json:"column,omitempty"`
	CardID int64  `json:"card_id,omitempty"`
}

// ImportDetailResponse is the per-order outcome within an import run.
type ImportDetailResponse struct {
	OrderID     int64  `json:"order_id"`
	OrderNumber int64  `json:"order_number"`
	Action      string `json:"action,omitempty"`
	Column      string `json:"column,omitempty"`
	CardID      int64  `json:"card_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ImportResponse summarizes one import run.
type ImportResponse struct {
	Imported int                    `json:"imported"`
	Total    int                    `json:"total"`
	Details  []ImportDetailResponse `json:"details,omitempty"`
}
