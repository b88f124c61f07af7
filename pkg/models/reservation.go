package models

// ReservationResult is an unpaid order created by the backend. OrderURL is
// an opaque redirect target; payment happens entirely outside this client.
type ReservationResult struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"order_id"`
	OrderURL string `json:"order_url"`
	Message  string `json:"message"`
}
