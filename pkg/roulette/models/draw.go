package models

// DrawStatus tells whether a draw produced entries or a sentinel message.
type DrawStatus string

const (
	// DrawOK means Items holds entries drawn from the pool.
	DrawOK DrawStatus = "ok"
	// DrawNoSelection means no category was selected.
	DrawNoSelection DrawStatus = "no_selection"
	// DrawNoData means the selected categories have no entries.
	DrawNoData DrawStatus = "no_data"
)

// Sentinel messages shown in place of drawn entries.
const (
	NoSelectionMessage      = "No category selected."
	NoMenuDataMessage       = "No menus in the selected categories."
	NoRestaurantDataMessage = "No restaurants in the selected categories."
)

// DrawResult is the outcome of one draw. It is replaced wholesale on each draw.
type DrawResult struct {
	// Kind is the flow the draw was made for.
	Kind Kind `json:"kind"`
	// Status is ok or one of the sentinel statuses.
	Status DrawStatus `json:"status"`
	// Items holds the drawn entries, or exactly one sentinel message.
	Items []string `json:"items"`
	// PoolSize is the number of candidates the draw was made from.
	PoolSize int `json:"pool_size"`
}

// IsSentinel reports whether the result carries a message rather than entries.
func (r DrawResult) IsSentinel() bool {
	return r.Status != DrawOK
}

// NoDataMessage returns the empty-pool message for a flow.
func NoDataMessage(kind Kind) string {
	if kind == KindRestaurant {
		return NoRestaurantDataMessage
	}
	return NoMenuDataMessage
}
