package config

type App struct {
	Port            string `env:"APP_PORT" default:"8080"`
	JWTSecret       string `env:"JWT_SECRET"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" default:"24"`
	Env             string `env:"APP_ENV" default:"dev"`
}
