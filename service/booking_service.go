package service

import (
	"context"

	"busbot/gateway"
	"busbot/pkg/logger"
	"busbot/pkg/models"
	"busbot/pkg/validate"
)

// BookingService fronts the gateway with pre-flight validation. Search
// and Book refuse to touch the network until their inputs pass.
type BookingService interface {
	Points(ctx context.Context) ([]models.BoardingPoint, error)
	Search(ctx context.Context, from, to models.BoardingPoint, dateStr string) ([]models.Trip, error)
	Seats(ctx context.Context, tripID int64) (*models.SeatMap, error)
	TripDetails(ctx context.Context, tripID int64) (*models.Trip, error)
	Book(ctx context.Context, tripID int64, seatID string, passenger models.PassengerDetails) (*models.ReservationResult, error)
}

type bookingService struct {
	gw  gateway.IGateway
	log logger.ILogger
}

func NewBookingService(gw gateway.IGateway, log logger.ILogger) BookingService {
	return &bookingService{
		gw:  gw,
		log: log,
	}
}

func (s *bookingService) Points(ctx context.Context) ([]models.BoardingPoint, error) {
	return s.gw.ListPoints(ctx)
}

func (s *bookingService) Search(ctx context.Context, from, to models.BoardingPoint, dateStr string) ([]models.Trip, error) {
	if err := validate.ValidateSearch(from.Name, to.Name, dateStr); err != nil {
		return nil, err
	}

	trips, err := s.gw.SearchTrips(ctx, from, to, dateStr)
	if err != nil {
		s.log.Error("trip search failed",
			logger.String("from", from.Name), logger.String("to", to.Name), logger.Error(err))
		return nil, err
	}
	s.log.Info("trip search",
		logger.String("from", from.Name), logger.String("to", to.Name),
		logger.String("date", dateStr), logger.Int("trips", len(trips)))
	return trips, nil
}

func (s *bookingService) Seats(ctx context.Context, tripID int64) (*models.SeatMap, error) {
	return s.gw.GetSeats(ctx, tripID)
}

func (s *bookingService) TripDetails(ctx context.Context, tripID int64) (*models.Trip, error) {
	return s.gw.GetTripDetails(ctx, tripID)
}

func (s *bookingService) Book(ctx context.Context, tripID int64, seatID string, passenger models.PassengerDetails) (*models.ReservationResult, error) {
	if err := validate.ValidatePassenger(passenger.Name, passenger.Email); err != nil {
		return nil, err
	}

	res, err := s.gw.BookTicket(ctx, tripID, seatID, passenger)
	if err != nil {
		s.log.Error("booking failed",
			logger.Int64("trip_id", tripID), logger.String("seat_id", seatID), logger.Error(err))
		return nil, err
	}
	s.log.Info("ticket booked",
		logger.Int64("trip_id", tripID), logger.String("seat_id", seatID),
		logger.String("order_id", res.OrderID))
	return res, nil
}
