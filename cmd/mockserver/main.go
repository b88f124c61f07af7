package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"busbot/config"
	"busbot/gateway"
	"busbot/gateway/mock"
	"busbot/pkg/logger"
	"busbot/pkg/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Standalone fixture server: serves the five booking endpoints from the
// in-memory mock gateway so the remote adapter can be exercised
// end-to-end against localhost.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName+"-mockserver", cfg.LoggerLevel)

	r := NewRouter(mock.New(cfg.MockSeed), cfg, log)

	addr := fmt.Sprintf(":%d", cfg.MockServerPort)
	log.Info("Mock API server running", logger.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Error("mock server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func NewRouter(gw gateway.IGateway, cfg config.Config, log logger.ILogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.POST(cfg.PointsPath, func(c *gin.Context) {
		log.Info("mock api: getting bus points")
		points, err := gw.ListPoints(context.Background())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PointsResponse{Success: true, Points: points})
	})

	r.POST(cfg.SearchPath, func(c *gin.Context) {
		var req models.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.SearchResponse{Error: err.Error()})
			return
		}
		log.Info("mock api: searching trips",
			logger.Int64("from", req.FromLocation), logger.Int64("to", req.ToLocation),
			logger.String("date", req.DateStr))

		from, to, err := resolvePoints(gw, req.FromLocation, req.ToLocation)
		if err != nil {
			writeError(c, err)
			return
		}
		trips, err := gw.SearchTrips(context.Background(), from, to, req.DateStr)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SearchResponse{Success: true, Trips: trips})
	})

	r.POST(cfg.SeatsPath, func(c *gin.Context) {
		var req models.SeatsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.SeatsResponse{Error: err.Error()})
			return
		}
		log.Info("mock api: getting seats", logger.Int64("trip_id", req.TripID))

		seatMap, err := gw.GetSeats(context.Background(), req.TripID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SeatsResponse{
			Success:   true,
			Seats:     seatMap.Seats,
			BusLayout: seatMap.BusLayout,
			Price:     seatMap.Price,
		})
	})

	r.POST(cfg.TripDetailsPath, func(c *gin.Context) {
		var req models.TripDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.TripDetailsResponse{Error: err.Error()})
			return
		}
		log.Info("mock api: getting trip details", logger.Int64("trip_id", req.TripID))

		trip, err := gw.GetTripDetails(context.Background(), req.TripID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.TripDetailsResponse{Success: true, Trip: trip})
	})

	r.POST(cfg.BookPath, func(c *gin.Context) {
		var req models.BookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.BookResponse{Error: err.Error()})
			return
		}
		log.Info("mock api: booking ticket",
			logger.Int64("trip_id", req.TripID), logger.String("seat_id", req.SeatID),
			logger.String("passenger", req.PassengerData.Name))

		res, err := gw.BookTicket(context.Background(), req.TripID, req.SeatID, req.PassengerData)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.BookResponse{
			Success:  res.Success,
			OrderID:  res.OrderID,
			OrderURL: res.OrderURL,
			Message:  res.Message,
		})
	})

	return r
}

// resolvePoints maps wire point ids onto resolved points. Unknown ids
// yield zero-valued points, which simply match no trips.
func resolvePoints(gw gateway.IGateway, fromID, toID int64) (from, to models.BoardingPoint, err error) {
	points, err := gw.ListPoints(context.Background())
	if err != nil {
		return from, to, err
	}
	for _, p := range points {
		if p.ID == fromID {
			from = p
		}
		if p.ID == toID {
			to = p
		}
	}
	return from, to, nil
}

// Business failures stay 200 with success:false, matching the backend's
// envelope convention; anything else is a server fault.
func writeError(c *gin.Context, err error) {
	var businessErr *gateway.BusinessError
	if errors.As(err, &businessErr) {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": businessErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}
