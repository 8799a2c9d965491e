package ratelimit

type Config struct {
	WindowMinutes int `env:"CONTACT_RATE_LIMIT_WINDOW_MINUTES" envDefault:"15"`
	MaxPerWindow  int `env:"CONTACT_RATE_LIMIT_MAX" envDefault:"5"`
}
