package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"apparel/internal/adapters/in/http/openapi"
	"apparel/internal/core/application/usecases/commands"
	"apparel/internal/core/application/usecases/queries"
	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/model/timeline"
	"apparel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader names the caller of administrative and timeline writes. Authentication
// happens upstream; the value is only recorded.
const ActorHeader = "X-Actor-ID"

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ConfirmPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	AddTimelineEntryHandler interface {
		Handle(ctx context.Context, cmd commands.AddTimelineEntryCommand) (*timeline.Entry, error)
	}
	AddProductionUpdateHandler interface {
		Handle(ctx context.Context, cmd commands.AddProductionUpdateCommand) (*timeline.ProductionUpdate, error)
	}
	UpdateLeadTimeDefaultsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateLeadTimeDefaultsCommand) (leadtime.Profile, error)
	}
	SetProductLeadTimesHandler interface {
		Handle(ctx context.Context, cmd commands.SetProductLeadTimesCommand) (leadtime.Override, error)
	}
	GetLeadTimeDefaultsHandler interface {
		Handle(ctx context.Context, query queries.GetLeadTimeDefaultsQuery) (leadtime.Profile, error)
	}
	GetEffectiveLeadTimesHandler interface {
		Handle(ctx context.Context, query queries.GetEffectiveLeadTimesQuery) (leadtime.Profile, error)
	}
	GetOrderEtaHandler interface {
		Handle(ctx context.Context, query queries.GetOrderEtaQuery) (queries.GetOrderEtaQueryResponse, error)
	}
	GetOrderTimelineHandler interface {
		Handle(ctx context.Context, query queries.GetOrderTimelineQuery) ([]queries.GetOrderTimelineQueryResponse, error)
	}
)

// Handlers groups the use cases the HTTP API is built on.
type Handlers struct {
	CreateOrder            CreateOrderHandler
	ConfirmPayment         ConfirmPaymentHandler
	ChangeOrderStatus      ChangeOrderStatusHandler
	AddTimelineEntry       AddTimelineEntryHandler
	AddProductionUpdate    AddProductionUpdateHandler
	UpdateLeadTimeDefaults UpdateLeadTimeDefaultsHandler
	SetProductLeadTimes    SetProductLeadTimesHandler

	GetLeadTimeDefaults   GetLeadTimeDefaultsHandler
	GetEffectiveLeadTimes GetEffectiveLeadTimesHandler
	GetOrderEta           GetOrderEtaHandler
	GetOrderTimeline      GetOrderTimelineHandler
}

// Server translates HTTP requests into commands and queries and their results into JSON.
type Server struct {
	handlers Handlers
	now      func() time.Time
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// now stamps writes that do not carry their own timestamp.
func NewServer(handlers Handlers, now func() time.Time, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		now:      now,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts every endpoint on e. Requests are checked by validator when it
// is not nil. ws serves GET /ws and may be nil.
func (s *Server) RegisterRoutes(e *echo.Echo, validator *openapi.Validator, ws http.Handler) {
	if validator != nil {
		e.Use(validator.Middleware(s.fail))
	}

	e.GET("/health", s.Health)
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openapi.Document())
	})

	e.GET("/lead-times/defaults", s.GetLeadTimeDefaults)
	e.PUT("/lead-times/defaults", s.UpdateLeadTimeDefaults)
	e.PUT("/products/:id/lead-times", s.SetProductLeadTimes)
	e.GET("/products/:id/effective", s.GetEffectiveLeadTimes)

	e.POST("/orders", s.CreateOrder)
	e.POST("/orders/:id/payment", s.ConfirmPayment)
	e.PUT("/orders/:id/status", s.ChangeOrderStatus)
	e.POST("/orders/:id/timeline", s.AddTimelineEntry)
	e.GET("/orders/:id/timeline", s.GetOrderTimeline)
	e.POST("/orders/:id/production-updates", s.AddProductionUpdate)
	e.GET("/orders/:id/eta", s.GetOrderEta)

	if ws != nil {
		e.GET("/ws", echo.WrapHandler(ws))
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "ok"})
}

// GetLeadTimeDefaults handles GET /lead-times/defaults.
func (s *Server) GetLeadTimeDefaults(ctx echo.Context) error {
	profile, err := s.handlers.GetLeadTimeDefaults.Handle(ctx.Request().Context(), queries.NewGetLeadTimeDefaultsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, profileFromDomain(profile))
}

// UpdateLeadTimeDefaults handles PUT /lead-times/defaults. The body is merged over the
// current defaults and the merged profile is returned.
func (s *Server) UpdateLeadTimeDefaults(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ProfilePatch
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}
	override, err := body.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateLeadTimeDefaultsCommand(override, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}
	profile, err := s.handlers.UpdateLeadTimeDefaults.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, profileFromDomain(profile))
}

// SetProductLeadTimes handles PUT /products/:id/lead-times and returns the stored override.
func (s *Server) SetProductLeadTimes(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	productID, err := pathID(ctx, "productId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ProfilePatch
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}
	override, err := body.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetProductLeadTimesCommand(productID, override, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}
	stored, err := s.handlers.SetProductLeadTimes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, overrideFromDomain(stored))
}

// GetEffectiveLeadTimes handles GET /products/:id/effective.
func (s *Server) GetEffectiveLeadTimes(ctx echo.Context) error {
	productID, err := pathID(ctx, "productId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetEffectiveLeadTimesQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}
	profile, err := s.handlers.GetEffectiveLeadTimes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, profileFromDomain(profile))
}

// CreateOrder handles POST /orders. The id and creation time are generated when absent.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.ID != nil {
		id, err := parseID("id", *body.ID)
		if err != nil {
			return s.fail(ctx, err)
		}
		orderID = id
	}

	var productID *kernel.UUID
	if body.ProductID != nil {
		id, err := parseID("productId", *body.ProductID)
		if err != nil {
			return s.fail(ctx, err)
		}
		productID = &id
	}

	createdAt := s.now()
	if body.CreatedAt != nil {
		createdAt = *body.CreatedAt
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, productID, createdAt)
	if err != nil {
		return s.fail(ctx, err)
	}
	if handleErr := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.fail(ctx, handleErr)
	}

	resp := Order{
		ID:        orderID.String(),
		Status:    order.Submitted.String(),
		CreatedAt: createdAt.UTC(),
		UpdatedAt: createdAt.UTC(),
	}
	if productID != nil {
		id := productID.String()
		resp.ProductID = &id
	}
	return ctx.JSON(http.StatusCreated, resp)
}

// ConfirmPayment handles POST /orders/:id/payment. It is called by the payment gateway
// integration, so the actor header is optional here.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	actorID := strings.TrimSpace(ctx.Request().Header.Get(ActorHeader))
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body Payment
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}
	paidAt := s.now()
	if body.PaidAt != nil {
		paidAt = *body.PaidAt
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, paidAt, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.handlers.ConfirmPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// ChangeOrderStatus handles PUT /orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body StatusChange
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, body.PaidAt, actorID, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// AddTimelineEntry handles POST /orders/:id/timeline.
func (s *Server) AddTimelineEntry(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewTimelineEntry
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}
	kind, err := timeline.ParseKind(body.Kind)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddTimelineEntryCommand(orderID, kind, body.Message, actorID, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	entry, err := s.handlers.AddTimelineEntry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, timelineEntryFromDomain(entry))
}

// GetOrderTimeline handles GET /orders/:id/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	items, err := s.handlers.GetOrderTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, timelineFromQuery(items))
}

// AddProductionUpdate handles POST /orders/:id/production-updates.
func (s *Server) AddProductionUpdate(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewProductionUpdate
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProductionUpdateCommand(orderID, body.Message, actorID, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	update, err := s.handlers.AddProductionUpdate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, productionUpdateFromDomain(update))
}

// GetOrderEta handles GET /orders/:id/eta.
func (s *Server) GetOrderEta(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderEtaQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	resp, err := s.handlers.GetOrderEta.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderEtaFromQuery(resp))
}

func actor(ctx echo.Context) (string, error) {
	actorID := strings.TrimSpace(ctx.Request().Header.Get(ActorHeader))
	if actorID == "" {
		return "", errMissingActor
	}
	return actorID, nil
}

func pathID(ctx echo.Context, field string) (kernel.UUID, error) {
	return parseID(field, ctx.Param("id"))
}

func parseID(field, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}
