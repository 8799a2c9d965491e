package config

type AppConfig struct {
	APIPort     string `env:"PORT" envDefault:"5000"`
	AdminAPIKey string `env:"ADMIN_API_KEY,required"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"dist"`
}

type DatabaseConfig struct {
	Host            string `env:"FOLIO_POSTGRES_HOST,required"`
	Port            string `env:"FOLIO_POSTGRES_PORT,required"`
	User            string `env:"FOLIO_POSTGRES_USER,required"`
	DBName          string `env:"FOLIO_POSTGRES_DB_NAME,required"`
	Password        string `env:"FOLIO_POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"FOLIO_POSTGRES_DB_MAX_CONN"`
	MaxIdleConn     int    `env:"FOLIO_POSTGRES_DB_MAX_IDLE_CONN"`
	ConnMaxLifetime int    `env:"FOLIO_POSTGRES_DB_CONN_MAX_LIFETIME"`
	LogLevel        string `env:"FOLIO_POSTGRES_LOG_LEVEL" envDefault:"WARN"`
	SSLMode         string `env:"FOLIO_POSTGRES_SSL_MODE" envDefault:"disable"`
}

type CronConfig struct {
	DigestSchedule string `env:"CRON_SCHEDULE_CONTACT_DIGEST" envDefault:"0 8 * * *"`
}
