package cruise

import (
	"net/http"
	"strconv"

	"cruisevoyager/infras/otel"
	"cruisevoyager/internal/domains/cruise/model/dto"
	"cruisevoyager/internal/domains/cruise/service"
	reviewDto "cruisevoyager/internal/domains/review/model/dto"
	reviewService "cruisevoyager/internal/domains/review/service"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	"cruisevoyager/shared/validator"
	"cruisevoyager/transport/http/middleware"
	"cruisevoyager/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service       service.Cruise
	reviewService reviewService.Review
	auth          middleware.Auth
	otel          otel.Otel
}

func New(service service.Cruise, reviewService reviewService.Review, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:       service,
		reviewService: reviewService,
		auth:          auth,
		otel:          otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/cruises", func(r chi.Router) {
		r.Get("/", handler.GetCruises)
		r.Get("/featured/bestsellers", handler.GetBestSellers)
		r.Get("/featured/special-offers", handler.GetSpecialOffers)
		r.Get("/featured/recommended", handler.GetRecommended)
		r.Get("/{id}", handler.GetCruiseByID)
		r.Get("/{id}/reviews", handler.GetReviews)
		r.With(handler.auth.RequireUser).Post("/{id}/reviews", handler.CreateReview)
	})
}

// GetCruises lists cruises matching the search filters.
// @Summary Search cruises
// @Description List cruises with optional search filters and pagination. Ratings are derived from reviews.
// @Tags Cruise
// @Produce json
// @Param destination query string false "Destination substring match"
// @Param departurePort query string false "Departure port substring match"
// @Param departureDate query string false "Earliest departure date (YYYY-MM-DD)"
// @Param duration query string false "Duration band (1-5, 6-9, 10-14, 15+)"
// @Param minPrice query number false "Minimum effective price per person"
// @Param maxPrice query number false "Maximum effective price per person"
// @Param cruiseLine query []string false "Cruise lines, repeated or comma-separated"
// @Param amenities query []string false "Required amenities, any match"
// @Param cabinTypes query []string false "Required cabin types, any match"
// @Param rating query number false "Minimum average rating"
// @Success 200 {object} response.Data[dto.GetCruisesResponse] "Matching cruises"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cruises [get]
func (handler *Handler) GetCruises(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCruises")
	defer scope.End()

	filters := dto.SearchFilters{}
	filters.FromRequest(r)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.List(ctx, filters, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list cruises")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cruises retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetCruiseByID retrieves a single cruise.
// @Summary Get a cruise by ID
// @Description Retrieve a cruise with its derived rating and review count.
// @Tags Cruise
// @Produce json
// @Param id path string true "Cruise ID"
// @Success 200 {object} response.Data[dto.CruiseResponse] "Cruise details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cruises/{id} [get]
func (handler *Handler) GetCruiseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCruiseByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cruise")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cruise retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetBestSellers lists best-selling cruises.
// @Summary Get best sellers
// @Description List cruises flagged as best sellers.
// @Tags Cruise
// @Produce json
// @Param limit query int false "Maximum number of cruises"
// @Success 200 {object} response.Data[[]dto.CruiseResponse] "Best sellers"
// @Failure 500 {object} response.Error
// @Router /api/cruises/featured/bestsellers [get]
func (handler *Handler) GetBestSellers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBestSellers")
	defer scope.End()

	res, err := handler.service.BestSellers(ctx, limitParam(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list best sellers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Best sellers retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetSpecialOffers lists cruises with special offers.
// @Summary Get special offers
// @Description List cruises flagged as special offers.
// @Tags Cruise
// @Produce json
// @Param limit query int false "Maximum number of cruises"
// @Success 200 {object} response.Data[[]dto.CruiseResponse] "Special offers"
// @Failure 500 {object} response.Error
// @Router /api/cruises/featured/special-offers [get]
func (handler *Handler) GetSpecialOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialOffers")
	defer scope.End()

	res, err := handler.service.SpecialOffers(ctx, limitParam(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list special offers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special offers retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRecommended lists recommended cruises.
// @Summary Get recommended cruises
// @Description List recommended cruises, optionally biased towards a destination.
// @Tags Cruise
// @Produce json
// @Param destination query string false "Preferred destination"
// @Param limit query int false "Maximum number of cruises"
// @Success 200 {object} response.Data[[]dto.CruiseResponse] "Recommended cruises"
// @Failure 500 {object} response.Error
// @Router /api/cruises/featured/recommended [get]
func (handler *Handler) GetRecommended(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommended")
	defer scope.End()

	destination := r.URL.Query().Get("destination")

	res, err := handler.service.Recommended(ctx, destination, limitParam(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list recommended cruises")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recommended cruises retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetReviews lists reviews for a cruise.
// @Summary Get cruise reviews
// @Description List reviews for a cruise along with its aggregate rating.
// @Tags Review
// @Produce json
// @Param id path string true "Cruise ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[reviewDto.GetReviewsResponse] "Reviews"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cruises/{id}/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	cruiseID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.reviewService.ListByCruise(ctx, cruiseID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateReview adds a review to a cruise.
// @Summary Create a review
// @Description Add a review for a cruise as the currently authenticated user.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Cruise ID"
// @Param request body reviewDto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[reviewDto.ReviewResponse] "Review created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cruises/{id}/reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	cruiseID := chi.URLParam(r, constant.RequestParamID)

	req := reviewDto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.reviewService.Create(ctx, cruiseID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit))
	if err != nil {
		return 0
	}

	return limit
}
