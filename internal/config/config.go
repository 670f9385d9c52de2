package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host            string `envconfig:"SERVER_HOST" default:""`
	Port            string `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     int    `envconfig:"SERVER_TIMEOUT" default:"10"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"5"`
}

// Sinch credentials are optional at startup. Their absence surfaces as a
// configuration error on each request and on the health check.
type Sinch struct {
	KeyID     string `envconfig:"SINCH_KEY_ID"`
	KeySecret string `envconfig:"SINCH_KEY_SECRET"`
	ProjectID string `envconfig:"SINCH_PROJECT_ID"`

	SMSURL  string `envconfig:"SINCH_SMS_URL" default:"https://us.sms.api.sinch.com"`
	AuthURL string `envconfig:"SINCH_AUTH_URL" default:"https://auth.sinch.com/oauth2/token"`
	Timeout int    `envconfig:"SINCH_TIMEOUT" default:"10"`
}

type Weather struct {
	APIURL       string `envconfig:"WEATHER_API_URL" default:"https://api.open-meteo.com/v1/forecast"`
	ForecastDays int    `envconfig:"WEATHER_FORECAST_DAYS" default:"10"`
	Timeout      int    `envconfig:"WEATHER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Redis struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	LiveTime int    `envconfig:"REDIS_LIVE_TIME" default:"30"`
}

type Config struct {
	Server  Server
	Sinch   Sinch
	Weather Weather
	Breaker Breaker
	Redis   Redis

	ServiceName  string `envconfig:"SERVICE_NAME" default:"weather_sms"`
	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/weather-sms-webhook.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/outbound-http.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (r Redis) Address() string {
	return r.Host + ":" + r.Port
}

func (r Redis) TTL() time.Duration {
	return time.Duration(r.LiveTime) * time.Minute
}

func (w Weather) RequestTimeout() time.Duration {
	return time.Duration(w.Timeout) * time.Second
}

func (s Sinch) RequestTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
