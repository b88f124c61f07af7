package service

import (
	"context"
	"errors"
	"testing"

	"busbot/pkg/logger"
	"busbot/pkg/models"
	"busbot/pkg/validate"
)

// stubGateway records calls so tests can assert validation short-circuits
// before any network-facing operation runs.
type stubGateway struct {
	searchCalls int
	bookCalls   int
}

func (s *stubGateway) ListPoints(ctx context.Context) ([]models.BoardingPoint, error) {
	return []models.BoardingPoint{{ID: 1, Name: "Praha", Active: true}}, nil
}

func (s *stubGateway) SearchTrips(ctx context.Context, from, to models.BoardingPoint, dateStr string) ([]models.Trip, error) {
	s.searchCalls++
	return []models.Trip{}, nil
}

func (s *stubGateway) GetSeats(ctx context.Context, tripID int64) (*models.SeatMap, error) {
	return &models.SeatMap{BusLayout: "2-2", Price: 250}, nil
}

func (s *stubGateway) GetTripDetails(ctx context.Context, tripID int64) (*models.Trip, error) {
	return &models.Trip{ID: tripID}, nil
}

func (s *stubGateway) BookTicket(ctx context.Context, tripID int64, seatID string, passenger models.PassengerDetails) (*models.ReservationResult, error) {
	s.bookCalls++
	return &models.ReservationResult{Success: true, OrderID: "SO1", OrderURL: "/shop/payment/validate?order=SO1"}, nil
}

func TestSearchRejectsInvalidInputBeforeGateway(t *testing.T) {
	gw := &stubGateway{}
	svc := NewBookingService(gw, logger.New("service-test", "error"))

	praha := models.BoardingPoint{ID: 1, Name: "Praha"}
	_, err := svc.Search(context.Background(), praha, praha, "2030-01-01")

	var validationErr *validate.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.searchCalls != 0 {
		t.Errorf("gateway called %d times despite validation failure", gw.searchCalls)
	}
}

func TestBookRejectsInvalidPassengerBeforeGateway(t *testing.T) {
	gw := &stubGateway{}
	svc := NewBookingService(gw, logger.New("service-test", "error"))

	_, err := svc.Book(context.Background(), 1, "1_1", models.PassengerDetails{Name: "Jan", Email: "not-an-email"})

	var validationErr *validate.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.bookCalls != 0 {
		t.Errorf("gateway called %d times despite validation failure", gw.bookCalls)
	}
}

func TestBookPassesValidPassengerThrough(t *testing.T) {
	gw := &stubGateway{}
	svc := NewBookingService(gw, logger.New("service-test", "error"))

	res, err := svc.Book(context.Background(), 1, "1_1", models.PassengerDetails{Name: "Jan Novák", Email: "jan@example.cz"})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if !res.Success || res.OrderID == "" {
		t.Errorf("unexpected reservation result: %+v", res)
	}
	if gw.bookCalls != 1 {
		t.Errorf("expected exactly one gateway call, got %d", gw.bookCalls)
	}
}
