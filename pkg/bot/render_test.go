package bot

import (
	"fmt"
	"strings"
	"testing"

	"busbot/pkg/models"
)

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(250); got != "250 Kč" {
		t.Errorf("FormatPrice(250) = %q", got)
	}
	if got := FormatPrice(250.5); got != "250.5 Kč" {
		t.Errorf("FormatPrice(250.5) = %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"08:00:00": "08:00",
		"":         "--:--",
		"9:30":     "9:30",
	}
	for input, want := range cases {
		if got := FormatTime(input); got != want {
			t.Errorf("FormatTime(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPaymentURL(t *testing.T) {
	base := "https://tickets.symcherabus.eu"

	if got := paymentURL(base, ""); got != base+"/shop/payment" {
		t.Errorf("empty order url: got %q", got)
	}
	if got := paymentURL(base, "/shop/payment/validate?order=SO1"); got != base+"/shop/payment/validate?order=SO1" {
		t.Errorf("relative order url: got %q", got)
	}
	absolute := "https://pay.example.com/checkout/1"
	if got := paymentURL(base, absolute); got != absolute {
		t.Errorf("absolute order url rewritten to %q", got)
	}
}

func TestSeatMarkupLayout(t *testing.T) {
	seats := make([]models.Seat, 0, 40)
	for row := 1; row <= 10; row++ {
		for col := 1; col <= 4; col++ {
			number := (row-1)*4 + col
			seats = append(seats, models.Seat{
				ID:     fmt.Sprintf("%d_%d", row, col),
				Number: number,
				Row:    row,
				Col:    col,
			})
		}
	}
	seats[1].Booked = true

	markup := seatMarkup(seats, "1_1")

	// 10 seat rows plus the action row.
	if len(markup.InlineKeyboard) != 11 {
		t.Fatalf("expected 11 keyboard rows, got %d", len(markup.InlineKeyboard))
	}
	if got := markup.InlineKeyboard[0][0].Text; !strings.HasPrefix(got, "✅") {
		t.Errorf("selected seat not highlighted, label %q", got)
	}
	if got := markup.InlineKeyboard[0][1].Text; got != "✖" {
		t.Errorf("booked seat label %q, want ✖", got)
	}
	actionRow := markup.InlineKeyboard[10]
	if len(actionRow) != 2 {
		t.Fatalf("expected back and continue buttons, got %d", len(actionRow))
	}
}

func TestPointsMarkupSkipsInactive(t *testing.T) {
	points := []models.BoardingPoint{
		{ID: 1, Name: "Praha", Active: true},
		{ID: 2, Name: "Brno", Active: true},
		{ID: 3, Name: "Zrušené", Active: false},
	}

	markup := pointsMarkup(points, "from_")

	total := 0
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			total++
			if btn.Text == "Zrušené" {
				t.Error("inactive point rendered")
			}
		}
	}
	if total != 2 {
		t.Errorf("expected 2 buttons, got %d", total)
	}
}

func TestTripCard(t *testing.T) {
	card := tripCard(models.Trip{
		FromName:       "Praha",
		ToName:         "Brno",
		DepartureTime:  "08:00:00",
		ArrivalTime:    "10:30:00",
		Price:          250,
		AvailableSeats: 34,
	})

	for _, want := range []string{"Praha → Brno", "08:00 - 10:30", "250 Kč", "34"} {
		if !strings.Contains(card, want) {
			t.Errorf("trip card missing %q:\n%s", want, card)
		}
	}
}
