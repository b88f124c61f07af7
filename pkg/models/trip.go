package models

// Trip is one scheduled journey between two boarding points. Times are
// backend-formatted "HH:MM:SS" strings and are passed through untouched.
type Trip struct {
	ID             int64   `json:"id"`
	FromName       string  `json:"from"`
	ToName         string  `json:"to"`
	FromPointID    int64   `json:"from_id"`
	ToPointID      int64   `json:"to_id"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"available_seats"`
	TotalSeats     int     `json:"total_seats"`
}
