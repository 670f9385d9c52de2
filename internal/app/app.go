package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weather-sms-webhook/docs"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/config"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/handlers/middleware"
	smsHandler "github.com/Nazarious-ucu/weather-sms-webhook/internal/handlers/sms"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/cache"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/forecast"
	loggerT "github.com/Nazarious-ucu/weather-sms-webhook/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-sms-webhook/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/sms"
	serviceWeather "github.com/Nazarious-ucu/weather-sms-webhook/internal/services/weather"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/weather/decorators"
	fLogger "github.com/Nazarious-ucu/weather-sms-webhook/pkg/logger"
)

type forecastService interface {
	GetForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error)
}

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService forecastService
	SMSProvider    *sms.Provider
	Redis          *redis.Client

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
	now func() time.Time
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
		now: time.Now,
	}
}

// Start serves HTTP until ctx is done, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		a.l.Info().Str("address", a.cfg.ServerAddress()).Msg("HTTP server running")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping webhook")
	case err := <-serveErr:
		if err != nil {
			a.l.Error().Err(err).Msg("HTTP server failed")
			_ = a.Shutdown(srvContainer)
			return err
		}
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown stops the HTTP server, closes Redis and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	var errs []error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	if srvContainer.Redis != nil {
		if err := srvContainer.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Init builds services and the router without starting the server.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().
		Str("address", a.cfg.ServerAddress()).
		Str("weather_api", a.cfg.Weather.APIURL).
		Bool("redis_enabled", a.cfg.Redis.Enabled).
		Msg("initializing weather SMS webhook")

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		return ServiceContainer{}, err
	}

	roundTripper := loggerT.NewRoundTripper(fileLogger, nil)
	httpLogClient := &http.Client{Transport: roundTripper}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	openMeteo := serviceWeather.NewBreakerClient("OpenMeteo", breakerCfg,
		serviceWeather.NewClientOpenMeteo(a.cfg.Weather.APIURL, a.cfg.Weather.ForecastDays, httpLogClient, a.l),
	)
	var weatherService forecastService = serviceWeather.NewService(a.l, openMeteo)

	var redisClient *redis.Client
	if a.cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{Addr: a.cfg.Redis.Address(), DB: a.cfg.Redis.DB})
		cacheMetrics := cache.NewMetricsDecorator[models.Forecast](
			cache.NewRedisClient[models.Forecast](redisClient, a.cfg.ServiceName, a.l, a.cfg.Redis.TTL()),
			metricsSvc.NewPromCollector(a.cfg.ServiceName, a.m.Registerer()),
		)
		weatherService = decorators.NewCachedService(weatherService, cacheMetrics, a.l)
	}

	provider := sms.NewProvider(a.cfg.Sinch, roundTripper, a.l)
	messengers := func() (smsHandler.Messenger, error) {
		client, err := provider.Client()
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	handler := smsHandler.NewHandler(
		messengers,
		weatherService,
		forecast.NewFormatter(a.now),
		a.m,
		smsHandler.Timeouts{
			Weather: a.cfg.Weather.RequestTimeout(),
			Send:    a.cfg.Sinch.RequestTimeout(),
		},
		a.l,
	)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(a.l),
		middleware.AccessLog(),
		a.m.HTTPMiddleware(),
	)

	router.GET("/", handler.Health)
	router.POST("/sms/receive", handler.Receive)
	router.POST("/sms/delivery_report", handler.DeliveryReport)
	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	httpServer := &http.Server{
		Addr:              a.cfg.ServerAddress(),
		Handler:           router,
		ReadTimeout:       time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		SMSProvider:    provider,
		Redis:          redisClient,
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
	}, nil
}
