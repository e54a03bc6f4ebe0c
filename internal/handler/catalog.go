package handler

import (
	"net/http"

	"sportsbook-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateBook
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param book body model.CreateBookRequest true "Book"
// @Success 201 {object} model.Book
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /admin/books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	managerID, _, _ := identity(c)
	book, err := h.catalogService.CreateBook(c.Request.Context(), managerID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// ListBooks
// @Summary List books
// @Tags books
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param status query string false "Filter by status" Enums(ACTIVE, COMPLETED, INACTIVE)
// @Success 200 {array} model.Book
// @Failure 400 {object} model.ErrorResponse "Invalid status"
// @Router /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.catalogService.ListBooks(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook
// @Summary Get a book with its events and outcomes
// @Tags books
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param id path string true "Book ID"
// @Success 200 {object} model.BookDetails
// @Failure 404 {object} model.ErrorResponse "Book not found"
// @Router /books/{id} [get]
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.catalogService.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateEvent
// @Summary Add an event to a book
// @Tags books
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param id path string true "Book ID"
// @Param event body model.CreateEventRequest true "Event"
// @Success 201 {object} model.Event
// @Failure 404 {object} model.ErrorResponse "Book not found"
// @Failure 409 {object} model.ErrorResponse "Book not active"
// @Router /admin/books/{id}/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	event, err := h.catalogService.CreateEvent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// CreateOutcome
// @Summary Add an outcome to an event
// @Tags books
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param id path string true "Event ID"
// @Param outcome body model.CreateOutcomeRequest true "Outcome"
// @Success 201 {object} model.Outcome
// @Failure 400 {object} model.ErrorResponse "Invalid odds"
// @Failure 404 {object} model.ErrorResponse "Event not found"
// @Router /admin/events/{id}/outcomes [post]
func (h *Handler) CreateOutcome(c *gin.Context) {
	var req model.CreateOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	outcome, err := h.catalogService.CreateOutcome(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

// PlaceBet
// @Summary Place a bet on an outcome
// @Description Debits the stake from the caller's balance and records a PENDING bet.
// @Tags bets
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param id path string true "Outcome ID"
// @Param bet body model.PlaceBetRequest true "Stake"
// @Success 201 {object} model.Bet
// @Failure 400 {object} model.ErrorResponse "Invalid stake or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Outcome not found"
// @Failure 409 {object} model.ErrorResponse "Outcome closed"
// @Router /outcomes/{id}/bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	var req model.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	userID, _, _ := identity(c)
	bet, err := h.catalogService.PlaceBet(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bet)
}
