package gateway

import (
	"context"

	"busbot/pkg/models"
)

// IGateway is the boundary between the booking workflow and the external
// commerce backend. SearchTrips takes resolved points rather than raw ids
// so implementations can fall back to name-based matching when the remote
// side is unavailable. An empty search result is a valid state, not an
// error.
type IGateway interface {
	ListPoints(ctx context.Context) ([]models.BoardingPoint, error)
	SearchTrips(ctx context.Context, from, to models.BoardingPoint, dateStr string) ([]models.Trip, error)
	GetSeats(ctx context.Context, tripID int64) (*models.SeatMap, error)
	GetTripDetails(ctx context.Context, tripID int64) (*models.Trip, error)
	BookTicket(ctx context.Context, tripID int64, seatID string, passenger models.PassengerDetails) (*models.ReservationResult, error)
}
