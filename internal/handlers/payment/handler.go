package payment

import (
	"io"
	"net/http"

	"cruisevoyager/infras/otel"
	bookingDto "cruisevoyager/internal/domains/booking/model/dto"
	"cruisevoyager/internal/domains/payment/service"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"
	"cruisevoyager/shared/validator"
	"cruisevoyager/transport/http/middleware"
	"cruisevoyager/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Payment, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.With(handler.auth.RequireUser).Post("/create-payment-intent", handler.CreatePaymentIntent)
	r.Post("/stripe-webhook", handler.HandleWebhook)
}

type webhookAck struct {
	Received bool `json:"received"`
}

// CreatePaymentIntent opens a payment intent for a booking.
// @Summary Create a payment intent
// @Description Create a payment intent for one of the current user's bookings and return its client secret.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body bookingDto.CreatePaymentIntentRequest true "Create Payment Intent Request"
// @Success 200 {object} response.Data[bookingDto.PaymentIntentResponse] "Client secret"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/create-payment-intent [post]
func (handler *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentIntent")
	defer scope.End()

	req := bookingDto.CreatePaymentIntentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateIntent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment intent")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment intent created successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// HandleWebhook processes payment processor callbacks.
// @Summary Handle a payment webhook
// @Description Verify and reconcile an asynchronous payment processor event. The processor is acknowledged for every verified event.
// @Tags Payment
// @Accept json
// @Produce json
// @Success 200 {object} webhookAck "Event acknowledged"
// @Failure 400 {object} response.Error
// @Router /api/stripe-webhook [post]
func (handler *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleWebhook")
	defer scope.End()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		response.WithError(w, failure.BadRequestFromString("invalid webhook payload"))

		return
	}

	signature := r.Header.Get(constant.RequestHeaderStripeSignature)

	if err := handler.service.HandleWebhook(ctx, payload, signature); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle webhook")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Webhook event acknowledged")

	response.WithPayload(w, http.StatusOK, webhookAck{Received: true})
}
