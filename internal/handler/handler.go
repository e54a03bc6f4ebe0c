package handler

import (
	"errors"
	"net/http"

	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	ledgerService       service.LedgerService
	catalogService      service.CatalogService
	outcomeResolver     service.OutcomeResolver
	settlementScheduler service.SettlementScheduler
	cronSecret          string
	logger              zerolog.Logger
}

func NewHandler(
	ledgerService service.LedgerService,
	catalogService service.CatalogService,
	outcomeResolver service.OutcomeResolver,
	settlementScheduler service.SettlementScheduler,
	cronSecret string,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		ledgerService:       ledgerService,
		catalogService:      catalogService,
		outcomeResolver:     outcomeResolver,
		settlementScheduler: settlementScheduler,
		cronSecret:          cronSecret,
		logger:              logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
		IdentityMiddleware(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	cron := v1.Group("/settlement/cron", CronSecretMiddleware(h.cronSecret))
	cron.POST("", h.TriggerSettlement)
	cron.GET("", h.TriggerSettlement)

	users := v1.Group("/users", RequireUserMiddleware())
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/transactions", h.GetTransactionsByUser)

	v1.GET("/transactions/:id/history", RequireAdminMiddleware(), h.GetStatusHistory)

	books := v1.Group("/books", RequireUserMiddleware())
	books.GET("", h.ListBooks)
	books.GET("/:id", h.GetBook)

	v1.POST("/outcomes/:id/bets", RequireUserMiddleware(), h.PlaceBet)

	admin := v1.Group("/admin", RequireAdminMiddleware())
	admin.POST("/settlement", h.TriggerSettlement)
	admin.GET("/settlement", h.TriggerSettlement)
	admin.GET("/settlement/status", h.GetSettlementStatus)
	admin.POST("/books", h.CreateBook)
	admin.POST("/books/:id/events", h.CreateEvent)
	admin.POST("/events/:id/outcomes", h.CreateOutcome)
	admin.PUT("/outcomes/:id/result", h.SetOutcomeResult)
	admin.POST("/users/:id/transactions", h.CreateTransaction)
	admin.PATCH("/transactions/:id/status", h.UpdateTransactionStatus)

	return router
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// Checked in order, specific sentinels before their class.
var errorMappings = []errorMapping{
	{model.ErrInsufficientBalance, http.StatusBadRequest, "INSUFFICIENT_BALANCE"},
	{model.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{model.ErrInvalidTransactionType, http.StatusBadRequest, "INVALID_TRANSACTION_TYPE"},
	{model.ErrInvalidStatus, http.StatusBadRequest, "INVALID_STATUS"},
	{model.ErrInvalidResult, http.StatusBadRequest, "INVALID_RESULT"},
	{model.ErrInvalidOdds, http.StatusBadRequest, "INVALID_ODDS"},
	{model.ErrOutcomeUnresolved, http.StatusBadRequest, "OUTCOME_UNRESOLVED"},
	{model.ErrValidation, http.StatusBadRequest, "INVALID_REQUEST"},
	{model.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{model.ErrTransactionNotFound, http.StatusNotFound, "TRANSACTION_NOT_FOUND"},
	{model.ErrBookNotFound, http.StatusNotFound, "BOOK_NOT_FOUND"},
	{model.ErrEventNotFound, http.StatusNotFound, "EVENT_NOT_FOUND"},
	{model.ErrOutcomeNotFound, http.StatusNotFound, "OUTCOME_NOT_FOUND"},
	{model.ErrBetNotFound, http.StatusNotFound, "BET_NOT_FOUND"},
	{model.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{model.ErrTerminalStatus, http.StatusConflict, "TERMINAL_STATUS"},
	{model.ErrOutcomeReopen, http.StatusConflict, "OUTCOME_REOPEN"},
	{model.ErrBookNotActive, http.StatusConflict, "BOOK_NOT_ACTIVE"},
	{model.ErrOutcomeClosed, http.StatusConflict, "OUTCOME_CLOSED"},
	{model.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{model.ErrDuplicateTransaction, http.StatusConflict, "DUPLICATE_TRANSACTION"},
	{model.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			status, code = m.status, m.code
			break
		}
	}

	resp := model.ErrorResponse{Error: err.Error(), Code: code}
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
	})
}
