package internal

import "time"

type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	MasterKey      string `env:"DRAFT_MASTER_KEY,required=true"`
	JWTSecret      string `env:"JWT_SECRET,required=true"`

	BackendURL          string `env:"CHAT_BACKEND_URL,required=true"`
	BackendSystemUserID string `env:"CHAT_BACKEND_SYSTEM_USER_ID,required=true"`
	BackendSystemToken  string `env:"CHAT_BACKEND_SYSTEM_TOKEN,required=true"`

	UserServiceURL string `env:"USER_SERVICE_URL,required=true"`
	LiveServiceURL string `env:"LIVE_SERVICE_URL,required=true"`
	// STATISTICS_URL may stay empty: analytics then only logs.
	StatisticsURL string `env:"STATISTICS_URL"`

	BackendTimeout      time.Duration `env:"CHAT_BACKEND_TIMEOUT,required=true"`
	SideEffectTimeout   time.Duration `env:"SIDE_EFFECT_TIMEOUT,required=true"`
	AnalyticsBufferSize int           `env:"ANALYTICS_BUFFER_SIZE,required=true"`
}
