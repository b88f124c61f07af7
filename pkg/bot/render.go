package bot

import (
	"fmt"
	"strconv"
	"strings"

	"busbot/pkg/models"

	tele "gopkg.in/telebot.v3"
)

// Presentation helpers. Everything here is a pure function of the data it
// receives; handlers own all state.

func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " Kč"
}

// FormatTime shortens a backend "HH:MM:SS" string to "HH:MM".
func FormatTime(timeStr string) string {
	if timeStr == "" {
		return "--:--"
	}
	if len(timeStr) < 5 {
		return timeStr
	}
	return timeStr[:5]
}

func pointsMarkup(points []models.BoardingPoint, prefix string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	var currentRow []tele.Btn

	for _, point := range points {
		if !point.Active {
			continue
		}
		currentRow = append(currentRow, menu.Data(point.Name, prefix+strconv.FormatInt(point.ID, 10)))
		if len(currentRow) == 2 {
			rows = append(rows, menu.Row(currentRow...))
			currentRow = []tele.Btn{}
		}
	}
	if len(currentRow) > 0 {
		rows = append(rows, menu.Row(currentRow...))
	}

	menu.Inline(rows...)
	return menu
}

func tripCard(trip models.Trip) string {
	return fmt.Sprintf("🚌 %s → %s\n🕗 %s - %s\n💺 Volná: %d\n💰 %s",
		trip.FromName, trip.ToName,
		FormatTime(trip.DepartureTime), FormatTime(trip.ArrivalTime),
		trip.AvailableSeats, FormatPrice(trip.Price))
}

func seatHeader(trip models.Trip, seatMap *models.SeatMap) string {
	available := 0
	for _, seat := range seatMap.Seats {
		if !seat.Booked {
			available++
		}
	}
	return fmt.Sprintf("💺 Vyberte sedadlo\n%s → %s\nVolná místa: %d/%d\nCena: %s",
		trip.FromName, trip.ToName, available, len(seatMap.Seats), FormatPrice(seatMap.Price))
}

// seatMarkup renders the grid four seats per row plus an action row.
// Booked seats stay tappable so the handler can answer with an
// "occupied" notice instead of silently doing nothing.
func seatMarkup(seats []models.Seat, selectedID string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	var currentRow []tele.Btn

	for _, seat := range seats {
		label := strconv.Itoa(seat.Number)
		switch {
		case seat.Booked:
			label = "✖"
		case seat.ID == selectedID:
			label = "✅" + label
		}
		currentRow = append(currentRow, menu.Data(label, "seat_"+seat.ID))
		if len(currentRow) == 4 {
			rows = append(rows, menu.Row(currentRow...))
			currentRow = []tele.Btn{}
		}
	}
	if len(currentRow) > 0 {
		rows = append(rows, menu.Row(currentRow...))
	}

	rows = append(rows, menu.Row(
		menu.Data(messages["cs"]["btn_back"], "new_search"),
		menu.Data(messages["cs"]["btn_continue"], "continue_seat"),
	))
	menu.Inline(rows...)
	return menu
}

func bookingSummary(trip models.Trip, seatID string, passenger models.PassengerDetails, price float64) string {
	var sb strings.Builder
	sb.WriteString("📋 <b>Shrnutí rezervace</b>\n\n")
	sb.WriteString(fmt.Sprintf("🚌 Trasa: %s → %s\n", trip.FromName, trip.ToName))
	sb.WriteString(fmt.Sprintf("🕗 Odjezd: %s\n", FormatTime(trip.DepartureTime)))
	sb.WriteString(fmt.Sprintf("💺 Sedadlo: %s\n", seatID))
	sb.WriteString(fmt.Sprintf("👤 Cestující: %s\n", passenger.Name))
	sb.WriteString(fmt.Sprintf("📧 Email: %s\n", passenger.Email))
	if passenger.Phone != "" {
		sb.WriteString(fmt.Sprintf("📞 Telefon: %s\n", passenger.Phone))
	}
	sb.WriteString(fmt.Sprintf("💰 Cena: %s\n\nPotvrzujete rezervaci?", FormatPrice(price)))
	return sb.String()
}

func confirmationText(res *models.ReservationResult, trip *models.Trip, seatID string, passenger models.PassengerDetails, price float64) string {
	var sb strings.Builder
	sb.WriteString("🎫 <b>Rezervace vytvořena</b>\n\n")
	sb.WriteString(fmt.Sprintf("🆔 Číslo objednávky: #%s\n", res.OrderID))
	if trip != nil {
		sb.WriteString(fmt.Sprintf("🚌 Trasa: %s → %s\n", trip.FromName, trip.ToName))
		sb.WriteString(fmt.Sprintf("🕗 Odjezd: %s\n", FormatTime(trip.DepartureTime)))
		sb.WriteString(fmt.Sprintf("💺 Sedadlo: %s\n", seatID))
	}
	if passenger.Name != "" {
		sb.WriteString(fmt.Sprintf("👤 Cestující: %s\n", passenger.Name))
	}
	sb.WriteString(fmt.Sprintf("💰 Cena: %s\n", FormatPrice(price)))
	sb.WriteString("\n⚠️ Stav: <b>NEZAPLACENO</b>\nRezervaci dokončíte zaplacením přes tlačítko níže.")
	return sb.String()
}

// paymentURL resolves the backend-issued redirect target against the
// commerce base URL; with no target the hardcoded payment path is used.
func paymentURL(baseURL, orderURL string) string {
	if orderURL == "" {
		return baseURL + "/shop/payment"
	}
	if strings.HasPrefix(orderURL, "http://") || strings.HasPrefix(orderURL, "https://") {
		return orderURL
	}
	return baseURL + orderURL
}
