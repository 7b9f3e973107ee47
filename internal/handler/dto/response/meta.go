package response

// MetaResponse exposes display-oriented settings to the frontend. The
// cancellation window here is informational; the enforced lead time lives
// server-side only.
type MetaResponse struct {
	CancelWindowHours int `json:"cancel_window_hours"`
}
