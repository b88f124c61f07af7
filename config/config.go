package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	TelegramBotToken string

	// Gateway selection: true routes all booking traffic to the in-memory
	// fixture generator instead of the commerce backend.
	UseMockAPI bool
	MockSeed   int64

	APIBaseURL      string
	PointsPath      string
	SearchPath      string
	SeatsPath       string
	TripDetailsPath string
	BookPath        string
	HTTPTimeoutSec  int

	MockServerPort int
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "busbot"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))

	cfg.UseMockAPI = cast.ToBool(getOrReturnDefault("USE_MOCK_API", true))
	cfg.MockSeed = cast.ToInt64(getOrReturnDefault("MOCK_SEED", 0))

	cfg.APIBaseURL = cast.ToString(getOrReturnDefault("API_BASE_URL", "https://tickets.symcherabus.eu"))
	cfg.PointsPath = cast.ToString(getOrReturnDefault("API_POINTS_PATH", "/api/bus/points"))
	cfg.SearchPath = cast.ToString(getOrReturnDefault("API_SEARCH_PATH", "/api/bus/search"))
	cfg.SeatsPath = cast.ToString(getOrReturnDefault("API_SEATS_PATH", "/api/bus/seats"))
	cfg.TripDetailsPath = cast.ToString(getOrReturnDefault("API_TRIP_DETAILS_PATH", "/api/bus/trip_details"))
	cfg.BookPath = cast.ToString(getOrReturnDefault("API_BOOK_PATH", "/api/bus/book"))
	cfg.HTTPTimeoutSec = cast.ToInt(getOrReturnDefault("HTTP_TIMEOUT_SEC", 15))

	cfg.MockServerPort = cast.ToInt(getOrReturnDefault("MOCK_SERVER_PORT", 3001))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
