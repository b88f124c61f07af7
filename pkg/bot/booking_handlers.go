package bot

import (
	"context"
	"strconv"

	"busbot/pkg/logger"
	"busbot/pkg/validate"

	tele "gopkg.in/telebot.v3"
)

// enterSeatSelection loads the seat map for the carried trip and renders
// the grid. Seat loading happens once per entry; a failure keeps the user
// here with the back action available.
func (b *Bot) enterSeatSelection(c tele.Context, session *UserSession) error {
	if session.Trip == nil {
		return b.handleSearchStart(c)
	}

	seatMap, err := b.Svc.Booking().Seats(context.Background(), session.TripID)
	if err != nil {
		b.Log.Error("failed to load seats", logger.Int64("trip_id", session.TripID), logger.Error(err))
		menu := &tele.ReplyMarkup{}
		menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_back"], "new_search")))
		return c.Send("❌ "+err.Error(), menu)
	}

	session.SeatMap = seatMap
	session.Price = seatMap.Price
	session.SeatID = ""
	session.State = StateSeat

	return c.Send(seatHeader(*session.Trip, seatMap), seatMarkup(seatMap.Seats, ""))
}

// handleSeatToggle is single-select: tapping an available seat selects it,
// tapping a booked one only answers the callback.
func (b *Bot) handleSeatToggle(c tele.Context, session *UserSession, seatID string) error {
	if session.State != StateSeat || session.SeatMap == nil {
		return c.Respond()
	}

	for _, seat := range session.SeatMap.Seats {
		if seat.ID != seatID {
			continue
		}
		if seat.Booked {
			return c.Respond(&tele.CallbackResponse{Text: messages["cs"]["seat_booked"]})
		}
		session.SeatID = seat.ID
		c.Respond()
		return c.Edit(seatHeader(*session.Trip, session.SeatMap), seatMarkup(session.SeatMap.Seats, seat.ID))
	}
	return c.Respond()
}

func (b *Bot) handleSeatContinue(c tele.Context, session *UserSession) error {
	if session.State != StateSeat {
		return c.Respond()
	}
	if session.SeatID == "" {
		return c.Respond(&tele.CallbackResponse{Text: messages["cs"]["seat_none"], ShowAlert: true})
	}
	c.Respond()
	return b.enterPassengerForm(c, session)
}

// enterPassengerForm starts the passenger data capture. A trip missing
// from the hand-off is fetched by id, and the price is re-derived from
// the seat endpoint on every visit since it may have changed.
func (b *Bot) enterPassengerForm(c tele.Context, session *UserSession) error {
	ctx := context.Background()

	if session.TripID == 0 {
		return b.handleSearchStart(c)
	}
	if session.Trip == nil {
		trip, err := b.Svc.Booking().TripDetails(ctx, session.TripID)
		if err != nil {
			return c.Send("❌ " + err.Error())
		}
		session.Trip = trip
	}
	if seatMap, err := b.Svc.Booking().Seats(ctx, session.TripID); err == nil {
		session.Price = seatMap.Price
	}

	session.Passenger.BoardingPointID = session.Trip.FromPointID
	session.Passenger.DroppingPointID = session.Trip.ToPointID
	session.State = StateName

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data("⬅️ Zpět na sedadla", "back_seats")))
	return c.Send(messages["cs"]["pass_name"], menu)
}

func (b *Bot) handlePassengerText(c tele.Context, session *UserSession, text string) error {
	switch session.State {
	case StateName:
		session.Passenger.Name = text
		session.State = StateEmail
		return c.Send(messages["cs"]["pass_email"])
	case StateEmail:
		if err := validate.ValidatePassenger(session.Passenger.Name, text); err != nil {
			return c.Send("❌ " + err.Error())
		}
		session.Passenger.Email = text
		return b.promptPhone(c, session)
	case StatePhone:
		session.Passenger.Phone = text
		return b.promptAge(c, session)
	case StateAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			return c.Send("❌ " + messages["cs"]["age_not_number"])
		}
		if err := validate.ValidateAge(age); err != nil {
			return c.Send("❌ " + err.Error())
		}
		session.Passenger.Age = age
		return b.promptGender(c, session)
	}
	return nil
}

func (b *Bot) promptPhone(c tele.Context, session *UserSession) error {
	session.State = StatePhone
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_skip"], "skip_phone")))
	return c.Send(messages["cs"]["pass_phone"], menu)
}

func (b *Bot) promptAge(c tele.Context, session *UserSession) error {
	session.State = StateAge
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(messages["cs"]["btn_skip"], "skip_age")))
	return c.Send(messages["cs"]["pass_age"], menu)
}

func (b *Bot) promptGender(c tele.Context, session *UserSession) error {
	session.State = StateGender
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data(messages["cs"]["btn_male"], "gender_male"),
			menu.Data(messages["cs"]["btn_female"], "gender_female"),
			menu.Data(messages["cs"]["btn_other"], "gender_other"),
		),
		menu.Row(menu.Data(messages["cs"]["btn_skip"], "skip_gender")),
	)
	return c.Send(messages["cs"]["pass_gender"], menu)
}

func (b *Bot) handleGenderSelection(c tele.Context, session *UserSession, gender string) error {
	if session.State != StateGender {
		return c.Respond()
	}
	session.Passenger.Gender = gender
	c.Respond()
	return b.promptConfirm(c, session)
}

func (b *Bot) promptConfirm(c tele.Context, session *UserSession) error {
	session.State = StateConfirm
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(
		menu.Data(messages["cs"]["btn_confirm"], "confirm_yes"),
		menu.Data(messages["cs"]["btn_cancel"], "confirm_no"),
	))
	return c.Send(bookingSummary(*session.Trip, session.SeatID, session.Passenger, session.Price), menu, tele.ModeHTML)
}

func (b *Bot) submitBooking(c tele.Context, session *UserSession) error {
	if session.State != StateConfirm || session.Trip == nil {
		return c.Respond()
	}
	if session.Busy {
		return c.Respond()
	}
	session.Busy = true
	defer func() { session.Busy = false }()

	res, err := b.Svc.Booking().Book(context.Background(), session.Trip.ID, session.SeatID, session.Passenger)
	if err != nil {
		c.Respond()
		return c.Send("❌ " + err.Error())
	}

	session.Reservation = res
	session.State = StateIdle
	c.Respond()
	if err := b.sendConfirmation(c, session); err != nil {
		return err
	}
	return b.showMenu(c)
}

func (b *Bot) sendConfirmation(c tele.Context, session *UserSession) error {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.URL(messages["cs"]["btn_pay"], paymentURL(b.Cfg.APIBaseURL, session.Reservation.OrderURL))))
	return c.Send(confirmationText(session.Reservation, session.Trip, session.SeatID, session.Passenger, session.Price), menu, tele.ModeHTML)
}
