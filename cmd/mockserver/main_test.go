package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"busbot/config"
	"busbot/gateway/mock"
	"busbot/gateway/remote"
	"busbot/pkg/logger"
	"busbot/pkg/models"
)

func testServer(t *testing.T) (*httptest.Server, config.Config) {
	t.Helper()
	cfg := config.Config{
		PointsPath:      "/api/bus/points",
		SearchPath:      "/api/bus/search",
		SeatsPath:       "/api/bus/seats",
		TripDetailsPath: "/api/bus/trip_details",
		BookPath:        "/api/bus/book",
		HTTPTimeoutSec:  5,
	}
	srv := httptest.NewServer(NewRouter(mock.New(7), cfg, logger.New("mockserver-test", "error")))
	t.Cleanup(srv.Close)
	cfg.APIBaseURL = srv.URL
	return srv, cfg
}

func postJSON(t *testing.T, url string, body, out interface{}) int {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode
}

func TestPointsEndpoint(t *testing.T) {
	srv, cfg := testServer(t)

	var resp models.PointsResponse
	status := postJSON(t, srv.URL+cfg.PointsPath, models.PointsRequest{}, &resp)
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if !resp.Success || len(resp.Points) != 5 {
		t.Errorf("unexpected points response: %+v", resp)
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv, cfg := testServer(t)

	var resp models.SearchResponse
	postJSON(t, srv.URL+cfg.SearchPath, models.SearchRequest{FromLocation: 1, ToLocation: 2, DateStr: "2030-01-01"}, &resp)
	if !resp.Success || len(resp.Trips) == 0 {
		t.Fatalf("unexpected search response: %+v", resp)
	}
	for _, trip := range resp.Trips {
		if trip.FromPointID != 1 || trip.ToPointID != 2 {
			t.Errorf("trip %d does not match the searched endpoints", trip.ID)
		}
	}

	var empty models.SearchResponse
	postJSON(t, srv.URL+cfg.SearchPath, models.SearchRequest{FromLocation: 2, ToLocation: 1, DateStr: "2030-01-01"}, &empty)
	if !empty.Success || len(empty.Trips) != 0 {
		t.Errorf("reverse search should succeed with no trips: %+v", empty)
	}
}

func TestSeatsEndpoint(t *testing.T) {
	srv, cfg := testServer(t)

	var resp models.SeatsResponse
	postJSON(t, srv.URL+cfg.SeatsPath, models.SeatsRequest{TripID: 1}, &resp)
	if !resp.Success || len(resp.Seats) != 40 || resp.BusLayout != "2-2" || resp.Price != 250 {
		t.Errorf("unexpected seats response: success=%v seats=%d layout=%q price=%v",
			resp.Success, len(resp.Seats), resp.BusLayout, resp.Price)
	}
}

func TestTripDetailsUnknownTrip(t *testing.T) {
	srv, cfg := testServer(t)

	var resp models.TripDetailsResponse
	status := postJSON(t, srv.URL+cfg.TripDetailsPath, models.TripDetailsRequest{TripID: 99}, &resp)
	if status != http.StatusOK {
		t.Fatalf("business failures should keep status 200, got %d", status)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("expected failure envelope, got %+v", resp)
	}
}

func TestBookEndpoint(t *testing.T) {
	srv, cfg := testServer(t)

	var resp models.BookResponse
	postJSON(t, srv.URL+cfg.BookPath, models.BookRequest{
		TripID: 1,
		SeatID: "1_1",
		PassengerData: models.PassengerDetails{
			Name:  "Test User",
			Email: "test@example.com",
		},
	}, &resp)
	if !resp.Success || resp.OrderID == "" {
		t.Fatalf("unexpected book response: %+v", resp)
	}
	if !strings.HasPrefix(resp.OrderURL, "/shop/payment") {
		t.Errorf("order url %q not under /shop/payment", resp.OrderURL)
	}
}

// TestRemoteGatewayAgainstFixtureServer runs the real remote adapter
// against the fixture server, the same wiring USE_MOCK_API=false uses
// locally.
func TestRemoteGatewayAgainstFixtureServer(t *testing.T) {
	_, cfg := testServer(t)
	g := remote.New(cfg, logger.New("mockserver-test", "error"))
	ctx := context.Background()

	points, err := g.ListPoints(ctx)
	if err != nil {
		t.Fatalf("ListPoints error: %v", err)
	}
	var praha, brno models.BoardingPoint
	for _, p := range points {
		switch p.Name {
		case "Praha":
			praha = p
		case "Brno":
			brno = p
		}
	}

	trips, err := g.SearchTrips(ctx, praha, brno, "2030-01-01")
	if err != nil {
		t.Fatalf("SearchTrips error: %v", err)
	}
	if len(trips) == 0 || trips[0].Price != 250 {
		t.Fatalf("unexpected trips: %+v", trips)
	}

	seatMap, err := g.GetSeats(ctx, trips[0].ID)
	if err != nil {
		t.Fatalf("GetSeats error: %v", err)
	}
	seatID := ""
	for _, seat := range seatMap.Seats {
		if !seat.Booked {
			seatID = seat.ID
			break
		}
	}
	if seatID == "" {
		t.Fatal("no available seat")
	}

	res, err := g.BookTicket(ctx, trips[0].ID, seatID, models.PassengerDetails{
		Name:  "Test User",
		Email: "test@example.com",
	})
	if err != nil {
		t.Fatalf("BookTicket error: %v", err)
	}
	if !res.Success || !strings.HasPrefix(res.OrderURL, "/shop/payment") {
		t.Errorf("unexpected reservation: %+v", res)
	}
}
