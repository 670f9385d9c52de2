package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/coordinates"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/metrics"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	NoCoordinatesMessage = "I couldn't find any coordinates in your message. To get coordinates:\n" +
		"1. Open Google Maps\n" +
		"2. Press and hold on a location\n" +
		"3. Copy the numbers at the bottom\n" +
		"4. Send them here (example: 37.4259011,-122.1576107)"

	FetchFailedMessage = "Sorry, I couldn't fetch the weather data right now. Please try again later."
)

const (
	respInvalidData   = "Invalid data"
	respReceived      = "Inbound message received"
	respInternalError = "Internal server error"
	respConfigOK      = "Configuration OK"
	respConfigError   = "Configuration error: "
	respOK            = "OK"
)

type Messenger interface {
	Send(ctx context.Context, msg models.OutboundMessage) (models.Batch, error)
}

// MessengerFactory returns the configured messaging client or a
// configuration error.
type MessengerFactory func() (Messenger, error)

type forecastService interface {
	GetForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error)
}

type replyFormatter interface {
	Reply(data models.Forecast) string
}

type Timeouts struct {
	Weather time.Duration
	Send    time.Duration
}

type Handler struct {
	messengers MessengerFactory
	forecasts  forecastService
	formatter  replyFormatter
	metrics    *metrics.Metrics
	timeouts   Timeouts
	logger     zerolog.Logger
}

func NewHandler(
	messengers MessengerFactory,
	forecasts forecastService,
	formatter replyFormatter,
	m *metrics.Metrics,
	timeouts Timeouts,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		messengers: messengers,
		forecasts:  forecasts,
		formatter:  formatter,
		metrics:    m,
		timeouts:   timeouts,
		logger:     logger.With().Str("component", "SMSHandler").Logger(),
	}
}

// Receive
// @Summary Receive an inbound SMS
// @Description Replies to the sender with a forecast for the first coordinate pair in the message
// @Tags sms
// @Accept json
// @Produce plain
// @Param message body models.InboundMessage true "Inbound message"
// @Success 200 {string} string "Inbound message received"
// @Failure 400 {string} string "Invalid data"
// @Failure 500 {string} string "Configuration error or Internal server error"
// @Router /sms/receive [post]
func (h *Handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()
	log := h.requestLogger(ctx)

	var in models.InboundMessage
	if err := c.ShouldBindJSON(&in); err != nil || !in.Complete() {
		log.Error().Err(err).Msg("received invalid message format, missing required fields")
		c.String(http.StatusBadRequest, respInvalidData)
		return
	}
	h.metrics.SMSReceivedTotal.Inc()

	log.Info().
		Str("from", *in.From).
		Str("to", *in.To).
		Str("body", *in.Body).
		Msg("received inbound message")

	messenger, err := h.messengers()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize messaging client")
		c.String(http.StatusInternalServerError, respConfigError+err.Error())
		return
	}

	reply, outcome := h.buildReply(ctx, log, *in.Body)
	h.metrics.RepliesTotal.WithLabelValues(outcome).Inc()

	sendCtx, cancel := context.WithTimeout(ctx, h.timeouts.Send)
	defer cancel()

	batch, err := messenger.Send(sendCtx, models.NewReply(in, reply))
	if err != nil {
		h.metrics.SendErrorsTotal.Inc()
		log.Error().Err(err).Msg("failed to send SMS")
		c.String(http.StatusInternalServerError, respInternalError)
		return
	}

	log.Info().
		Str("batch_id", batch.ID).
		Str("outcome", outcome).
		Msg("successfully sent reply")
	c.String(http.StatusOK, respReceived)
}

func (h *Handler) buildReply(ctx context.Context, log *zerolog.Logger, body string) (string, string) {
	coords, ok := coordinates.Extract(body)
	if !ok {
		log.Info().Msg("no coordinates found in message")
		return NoCoordinatesMessage, metrics.OutcomeNoCoordinates
	}

	fetchCtx, cancel := context.WithTimeout(ctx, h.timeouts.Weather)
	defer cancel()

	data, err := h.forecasts.GetForecast(fetchCtx, coords)
	if err != nil {
		log.Error().
			Err(err).
			Float64("latitude", coords.Latitude).
			Float64("longitude", coords.Longitude).
			Msg("failed to fetch weather data")
		return FetchFailedMessage, metrics.OutcomeFetchFailed
	}

	return h.formatter.Reply(data), metrics.OutcomeForecast
}

// DeliveryReport
// @Summary Record a delivery report
// @Description Logs the delivery report sent by the SMS provider
// @Tags sms
// @Accept json
// @Produce plain
// @Param report body models.DeliveryReport false "Delivery report"
// @Success 200 {string} string "OK"
// @Router /sms/delivery_report [post]
func (h *Handler) DeliveryReport(c *gin.Context) {
	log := h.requestLogger(c.Request.Context())

	raw, err := c.GetRawData()
	if err != nil {
		log.Warn().Err(err).Msg("failed to read delivery report body")
	}

	var report models.DeliveryReport
	if err := json.Unmarshal(raw, &report); err != nil {
		log.Info().
			Str("raw", string(raw)).
			Msg("message delivered")
		h.metrics.DeliveryReportsTotal.WithLabelValues(report.StatusLabel()).Inc()
		c.String(http.StatusOK, respOK)
		return
	}

	log.Info().
		Str("type", report.Type).
		Str("batch_id", report.BatchID).
		Str("recipient", report.Recipient).
		Str("status", report.RawStatus()).
		Int("code", report.Code).
		Msg("message delivered")
	h.metrics.DeliveryReportsTotal.WithLabelValues(report.StatusLabel()).Inc()
	c.String(http.StatusOK, respOK)
}

// Health
// @Summary Health check
// @Description Verifies that the SMS provider credentials are configured
// @Tags health
// @Produce plain
// @Success 200 {string} string "Configuration OK"
// @Failure 500 {string} string "Configuration error"
// @Router / [get]
func (h *Handler) Health(c *gin.Context) {
	if _, err := h.messengers(); err != nil {
		h.requestLogger(c.Request.Context()).Error().Err(err).Msg("health check failed")
		c.String(http.StatusInternalServerError, respConfigError+err.Error())
		return
	}
	c.String(http.StatusOK, respConfigOK)
}

func (h *Handler) requestLogger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.logger
}
