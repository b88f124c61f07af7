package mock

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"busbot/gateway"
	"busbot/pkg/models"
)

const (
	busRows   = 10
	busCols   = 4
	busLayout = "2-2"
)

var mockPoints = []models.BoardingPoint{
	{ID: 1, Name: "Praha", Active: true},
	{ID: 2, Name: "Brno", Active: true},
	{ID: 3, Name: "Ostrava", Active: true},
	{ID: 4, Name: "Plzeň", Active: true},
	{ID: 5, Name: "České Budějovice", Active: true},
}

var mockTrips = []models.Trip{
	{
		ID:             1,
		FromName:       "Praha",
		ToName:         "Brno",
		FromPointID:    1,
		ToPointID:      2,
		DepartureTime:  "08:00:00",
		ArrivalTime:    "10:30:00",
		Price:          250,
		AvailableSeats: 34,
		TotalSeats:     busRows * busCols,
	},
	{
		ID:             2,
		FromName:       "Praha",
		ToName:         "Brno",
		FromPointID:    1,
		ToPointID:      2,
		DepartureTime:  "14:00:00",
		ArrivalTime:    "16:30:00",
		Price:          250,
		AvailableSeats: 28,
		TotalSeats:     busRows * busCols,
	},
	{
		ID:             3,
		FromName:       "Praha",
		ToName:         "Ostrava",
		FromPointID:    1,
		ToPointID:      3,
		DepartureTime:  "09:30:00",
		ArrivalTime:    "13:15:00",
		Price:          350,
		AvailableSeats: 25,
		TotalSeats:     busRows * busCols,
	},
}

// Gateway generates booking fixtures in memory. Point and trip data is
// static; seat occupancy is drawn from rnd on every GetSeats call, so two
// snapshots of the same trip differ unless the gateway was seeded.
type Gateway struct {
	rnd *rand.Rand
}

// New returns a fixture gateway. Seed 0 means time-seeded occupancy;
// any other seed makes the generated seat maps reproducible.
func New(seed int64) *Gateway {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Gateway{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Gateway) ListPoints(ctx context.Context) ([]models.BoardingPoint, error) {
	points := make([]models.BoardingPoint, len(mockPoints))
	copy(points, mockPoints)
	return points, nil
}

func (g *Gateway) SearchTrips(ctx context.Context, from, to models.BoardingPoint, dateStr string) ([]models.Trip, error) {
	trips := []models.Trip{}
	for _, trip := range mockTrips {
		if trip.FromPointID == from.ID && trip.ToPointID == to.ID {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

// GetSeats books exactly TotalSeats-AvailableSeats random seats so the
// seat map stays consistent with the trip's advertised counts.
func (g *Gateway) GetSeats(ctx context.Context, tripID int64) (*models.SeatMap, error) {
	trip, err := g.findTrip(tripID)
	if err != nil {
		return nil, err
	}

	total := trip.TotalSeats
	booked := make(map[int]bool, total)
	for _, idx := range g.rnd.Perm(total)[:total-trip.AvailableSeats] {
		booked[idx] = true
	}

	seats := make([]models.Seat, 0, total)
	for row := 1; row <= busRows; row++ {
		for col := 1; col <= busCols; col++ {
			number := (row-1)*busCols + col
			seats = append(seats, models.Seat{
				ID:     fmt.Sprintf("%d_%d", row, col),
				Number: number,
				Row:    row,
				Col:    col,
				Booked: booked[number-1],
			})
		}
	}

	return &models.SeatMap{
		Seats:     seats,
		BusLayout: busLayout,
		Price:     trip.Price,
	}, nil
}

func (g *Gateway) GetTripDetails(ctx context.Context, tripID int64) (*models.Trip, error) {
	trip, err := g.findTrip(tripID)
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// BookTicket accepts any booking without re-checking occupancy; seat
// uniqueness is the real backend's concern.
func (g *Gateway) BookTicket(ctx context.Context, tripID int64, seatID string, passenger models.PassengerDetails) (*models.ReservationResult, error) {
	if _, err := g.findTrip(tripID); err != nil {
		return nil, err
	}

	orderID := fmt.Sprintf("MOCK-%d", time.Now().UnixMilli())
	return &models.ReservationResult{
		Success:  true,
		OrderID:  orderID,
		OrderURL: "/shop/payment/validate?order=" + orderID,
		Message:  "Jízdenka byla úspěšně rezervována (Mock API)",
	}, nil
}

func (g *Gateway) findTrip(tripID int64) (*models.Trip, error) {
	for _, trip := range mockTrips {
		if trip.ID == tripID {
			t := trip
			return &t, nil
		}
	}
	return nil, gateway.NewBusinessError("Spoj nebyl nalezen")
}
