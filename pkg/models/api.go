package models

// Wire payloads for the five booking endpoints, shared by the remote
// gateway adapter and the fixture server.

type PointsRequest struct{}

type SearchRequest struct {
	FromLocation int64  `json:"from_location"`
	ToLocation   int64  `json:"to_location"`
	DateStr      string `json:"date_str"`
}

type SeatsRequest struct {
	TripID int64 `json:"trip_id"`
}

type TripDetailsRequest struct {
	TripID int64 `json:"trip_id"`
}

type BookRequest struct {
	TripID        int64            `json:"trip_id"`
	SeatID        string           `json:"seat_id"`
	PassengerData PassengerDetails `json:"passenger_data"`
}

type PointsResponse struct {
	Success bool            `json:"success"`
	Points  []BoardingPoint `json:"points"`
	Error   string          `json:"error,omitempty"`
}

type SearchResponse struct {
	Success bool   `json:"success"`
	Trips   []Trip `json:"trips"`
	Error   string `json:"error,omitempty"`
}

type SeatsResponse struct {
	Success   bool    `json:"success"`
	Seats     []Seat  `json:"seats"`
	BusLayout string  `json:"bus_layout"`
	Price     float64 `json:"price"`
	Error     string  `json:"error,omitempty"`
}

type TripDetailsResponse struct {
	Success bool   `json:"success"`
	Trip    *Trip  `json:"trip"`
	Error   string `json:"error,omitempty"`
}

type BookResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"order_id"`
	OrderURL string `json:"order_url"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
}
