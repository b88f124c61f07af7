package bot

import (
	"strings"
	"time"

	"busbot/config"
	"busbot/pkg/logger"
	"busbot/pkg/models"
	"busbot/service"

	tele "gopkg.in/telebot.v3"
)

// UserSession is the navigation-carried state of one chat's booking
// workflow. Everything a screen hands to the next lives here, copied by
// value on transition; nothing survives a /start reset.
type UserSession struct {
	State string
	Busy  bool

	Points  []models.BoardingPoint
	From    *models.BoardingPoint
	To      *models.BoardingPoint
	DateStr string

	Trips   []models.Trip
	TripID  int64
	Trip    *models.Trip
	SeatMap *models.SeatMap
	SeatID  string
	Price   float64

	Passenger   models.PassengerDetails
	Reservation *models.ReservationResult
}

type Bot struct {
	Bot      *tele.Bot
	Log      logger.ILogger
	Cfg      *config.Config
	Svc      service.IServiceManager
	Sessions map[int64]*UserSession
}

const (
	StateIdle    = "idle"
	StateFrom    = "awaiting_from"
	StateTo      = "awaiting_to"
	StateDate    = "awaiting_date"
	StateTrip    = "awaiting_trip"
	StateSeat    = "awaiting_seat"
	StateName    = "awaiting_name"
	StateEmail   = "awaiting_email"
	StatePhone   = "awaiting_phone"
	StateAge     = "awaiting_age"
	StateGender  = "awaiting_gender"
	StateConfirm = "awaiting_confirm"
)

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramBotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	bot := &Bot{
		Bot:      b,
		Log:      log,
		Cfg:      cfg,
		Svc:      svc,
		Sessions: make(map[int64]*UserSession),
	}
	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) Start() {
	b.Log.Info("🚌 Bus booking bot started...")
	b.Bot.Start()
}

var messages = map[string]map[string]string{
	"cs": {
		"welcome":         "👋 Vítejte! Zde si rezervujete jízdenku na autobus.",
		"menu":            "🚌 Hlavní menu:",
		"btn_search":      "🔍 Hledat spoje",
		"btn_reservation": "🎫 Poslední rezervace",
		"search_from":     "📍 Vyberte nástupní místo:",
		"search_to":       "🏁 Vyberte výstupní místo:",
		"search_date":     "📅 Zadejte datum cesty (RRRR-MM-DD):",
		"btn_tomorrow":    "📅 Zítra",
		"btn_retry":       "🔄 Zkusit znovu",
		"no_trips":        "📭 Pro zadané parametry nebyly nalezeny žádné spoje",
		"trips_header":    "🚌 Nalezené spoje:",
		"btn_select":      "Vybrat",
		"sold_out":        "Vyprodáno",
		"seat_booked":     "Sedadlo je obsazené",
		"seat_none":       "Vyberte prosím sedadlo",
		"btn_continue":    "➡️ Pokračovat",
		"btn_back":        "⬅️ Nové hledání",
		"pass_name":       "👤 Zadejte jméno cestujícího:",
		"pass_email":      "📧 Zadejte email:",
		"pass_phone":      "📞 Zadejte telefon:",
		"pass_age":        "🔢 Zadejte věk:",
		"pass_gender":     "⚧ Vyberte pohlaví:",
		"btn_skip":        "Přeskočit",
		"btn_male":        "Muž",
		"btn_female":      "Žena",
		"btn_other":       "Jiné",
		"btn_confirm":     "✅ Rezervovat",
		"btn_cancel":      "❌ Zrušit",
		"cancelled":       "❌ Rezervace zrušena.",
		"age_not_number":  "Věk musí být číslo",
		"not_found":       "😕 Informace o objednávce nebyly nalezeny.",
		"btn_pay":         "💳 Zaplatit",
	},
}

func (b *Bot) registerHandlers() {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle(messages["cs"]["btn_search"], b.handleSearchStart)
	b.Bot.Handle(messages["cs"]["btn_reservation"], b.handleReservation)
	b.Bot.Handle(tele.OnCallback, b.handleCallback)
	b.Bot.Handle(tele.OnText, b.handleText)
}

// handleStart is the login transition: a fresh session replaces whatever
// workflow was in flight.
func (b *Bot) handleStart(c tele.Context) error {
	b.Sessions[c.Sender().ID] = &UserSession{State: StateIdle}
	c.Send(messages["cs"]["welcome"], tele.RemoveKeyboard)
	return b.showMenu(c)
}

func (b *Bot) showMenu(c tele.Context) error {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(messages["cs"]["btn_search"])),
		menu.Row(menu.Text(messages["cs"]["btn_reservation"])),
	)
	return c.Send(messages["cs"]["menu"], menu)
}

func (b *Bot) session(c tele.Context) *UserSession {
	session, ok := b.Sessions[c.Sender().ID]
	if !ok {
		session = &UserSession{State: StateIdle}
		b.Sessions[c.Sender().ID] = session
	}
	return session
}

func (b *Bot) handleText(c tele.Context) error {
	session := b.session(c)
	text := strings.TrimSpace(c.Text())

	switch session.State {
	case StateDate:
		session.DateStr = text
		return b.runSearch(c, session)
	case StateName, StateEmail, StatePhone, StateAge:
		return b.handlePassengerText(c, session, text)
	}
	return nil
}

func (b *Bot) handleCallback(c tele.Context) error {
	session := b.session(c)
	data := strings.TrimSpace(strings.TrimPrefix(c.Callback().Data, "\f"))

	switch {
	case data == "retry_points" || data == "new_search":
		c.Respond()
		return b.handleSearchStart(c)
	case strings.HasPrefix(data, "from_"):
		return b.handleFromSelection(c, session, strings.TrimPrefix(data, "from_"))
	case strings.HasPrefix(data, "to_"):
		return b.handleToSelection(c, session, strings.TrimPrefix(data, "to_"))
	case data == "date_tomorrow":
		return b.handleTomorrow(c, session)
	case strings.HasPrefix(data, "trip_"):
		return b.handleTripSelection(c, session, strings.TrimPrefix(data, "trip_"))
	case strings.HasPrefix(data, "seat_"):
		return b.handleSeatToggle(c, session, strings.TrimPrefix(data, "seat_"))
	case data == "continue_seat":
		return b.handleSeatContinue(c, session)
	case data == "back_seats":
		c.Respond()
		return b.enterSeatSelection(c, session)
	case data == "skip_phone":
		c.Respond()
		return b.promptAge(c, session)
	case data == "skip_age":
		c.Respond()
		return b.promptGender(c, session)
	case strings.HasPrefix(data, "gender_"):
		return b.handleGenderSelection(c, session, strings.TrimPrefix(data, "gender_"))
	case data == "skip_gender":
		c.Respond()
		return b.promptConfirm(c, session)
	case data == "confirm_yes":
		return b.submitBooking(c, session)
	case data == "confirm_no":
		c.Respond()
		session.State = StateIdle
		c.Send(messages["cs"]["cancelled"])
		return b.showMenu(c)
	}
	return c.Respond()
}
