package service

import (
	"busbot/gateway"
	"busbot/pkg/logger"
)

type IServiceManager interface {
	Booking() BookingService
}

type service struct {
	bookingService BookingService
}

func New(gw gateway.IGateway, log logger.ILogger) IServiceManager {
	return &service{
		bookingService: NewBookingService(gw, log),
	}
}

func (s *service) Booking() BookingService {
	return s.bookingService
}
