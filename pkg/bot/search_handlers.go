package bot

import (
	"context"
	"strconv"
	"time"

	"busbot/pkg/logger"
	"busbot/pkg/models"

	tele "gopkg.in/telebot.v3"
)

// handleSearchStart enters the Search screen. Boarding points are loaded
// once per entry; a load failure keeps the user here with a retry button.
func (b *Bot) handleSearchStart(c tele.Context) error {
	session := b.session(c)
	if session.Busy {
		return nil
	}
	session.Busy = true
	defer func() { session.Busy = false }()

	points, err := b.Svc.Booking().Points(context.Background())
	if err != nil {
		b.Log.Error("failed to load boarding points", logger.Error(err))
		menu := &tele.ReplyMarkup{}
		menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_retry"], "retry_points")))
		return c.Send("❌ "+err.Error(), menu)
	}

	*session = UserSession{State: StateFrom, Points: points}
	return c.Send(messages["cs"]["search_from"], pointsMarkup(points, "from_"))
}

func (b *Bot) handleFromSelection(c tele.Context, session *UserSession, rawID string) error {
	if session.State != StateFrom {
		return c.Respond()
	}
	id, _ := strconv.ParseInt(rawID, 10, 64)
	point := findPoint(session.Points, id)
	if point == nil {
		return c.Respond()
	}

	session.From = point
	session.State = StateTo
	c.Respond()
	return c.Edit(messages["cs"]["search_to"], pointsMarkup(session.Points, "to_"))
}

func (b *Bot) handleToSelection(c tele.Context, session *UserSession, rawID string) error {
	if session.State != StateTo {
		return c.Respond()
	}
	id, _ := strconv.ParseInt(rawID, 10, 64)
	point := findPoint(session.Points, id)
	if point == nil {
		return c.Respond()
	}

	session.To = point
	session.State = StateDate
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_tomorrow"], "date_tomorrow")))
	c.Respond()
	return c.Edit(messages["cs"]["search_date"], menu)
}

func (b *Bot) handleTomorrow(c tele.Context, session *UserSession) error {
	if session.State != StateDate {
		return c.Respond()
	}
	session.DateStr = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	c.Respond()
	return b.runSearch(c, session)
}

func (b *Bot) runSearch(c tele.Context, session *UserSession) error {
	if session.Busy || session.From == nil || session.To == nil {
		return nil
	}
	session.Busy = true
	defer func() { session.Busy = false }()

	trips, err := b.Svc.Booking().Search(context.Background(), *session.From, *session.To, session.DateStr)
	if err != nil {
		// Validation and gateway failures alike render inline; the user
		// stays on the date step and can resubmit.
		return c.Send("❌ " + err.Error())
	}
	if len(trips) == 0 {
		return c.Send(messages["cs"]["no_trips"])
	}

	session.Trips = trips
	session.State = StateTrip

	c.Send(messages["cs"]["trips_header"])
	for _, trip := range trips {
		menu := &tele.ReplyMarkup{}
		if trip.AvailableSeats > 0 {
			menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_select"], "trip_"+strconv.FormatInt(trip.ID, 10))))
			c.Send(tripCard(trip), menu)
		} else {
			c.Send(tripCard(trip) + "\n🚫 " + messages["cs"]["sold_out"])
		}
	}
	return nil
}

func (b *Bot) handleTripSelection(c tele.Context, session *UserSession, rawID string) error {
	if session.State != StateTrip {
		return c.Respond()
	}
	id, _ := strconv.ParseInt(rawID, 10, 64)
	for _, trip := range session.Trips {
		if trip.ID == id {
			t := trip
			session.TripID = t.ID
			session.Trip = &t
			c.Respond()
			return b.enterSeatSelection(c, session)
		}
	}
	return c.Respond()
}

// handleReservation renders the Confirmation screen on demand. Entered
// without a reservation in the session it falls back to a "not found"
// view with a way back to Search.
func (b *Bot) handleReservation(c tele.Context) error {
	session := b.session(c)
	if session.Reservation == nil {
		menu := &tele.ReplyMarkup{}
		menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_search"], "new_search")))
		return c.Send(messages["cs"]["not_found"], menu)
	}
	return b.sendConfirmation(c, session)
}

func findPoint(points []models.BoardingPoint, id int64) *models.BoardingPoint {
	for _, point := range points {
		if point.ID == id {
			p := point
			return &p
		}
	}
	return nil
}
