package models

// Seat id is the composite "row_col" string the backend keys bookings by.
type Seat struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Booked bool   `json:"booked"`
}

type SeatMap struct {
	Seats     []Seat  `json:"seats"`
	BusLayout string  `json:"bus_layout"`
	Price     float64 `json:"price"`
}
