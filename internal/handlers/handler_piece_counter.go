package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/SscSPs/costureira_pro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pieceCounterHandler handles HTTP requests related to piece counters.
type pieceCounterHandler struct {
	counterService portssvc.PieceCounterSvcFacade
}

func registerPieceCounterRoutes(rg *gin.RouterGroup, counterService portssvc.PieceCounterSvcFacade) {
	h := &pieceCounterHandler{counterService: counterService}

	counters := rg.Group("/counters")
	{
		counters.GET("", h.listCounters)
		counters.POST("/resolve", h.resolveCounter)
		counters.POST("/pieces", h.addPieces)
		counters.GET("/:counterID", h.getCounter)
		counters.POST("/:counterID/reconcile", h.reconcileCounter)
	}
}

// resolveCounter godoc
// @Summary Find or create the piece counter of a client
// @Description Returns the counter of the client, creating it with a zero total when absent. An unknown client name creates the client as well.
// @Tags counters
// @Accept  json
// @Produce  json
// @Param   counter body dto.ResolveCounterRequest true "Client reference"
// @Success 200 {object} dto.ResolveCounterResponse "Existing counter"
// @Success 201 {object} dto.ResolveCounterResponse "Counter created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to resolve counter"
// @Security BearerAuth
// @Router /counters/resolve [post]
func (h *pieceCounterHandler) resolveCounter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	counter, created, err := h.counterService.ResolveOrCreateCounter(c.Request.Context(), profileIDFrom(c), req.ClientID, req.ClientName)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve counter")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ResolveCounterResponse{CounterID: counter.CounterID, ClientID: counter.ClientID, Created: created})
}

// addPieces godoc
// @Summary Add or remove pieces
// @Description Appends a signed entry to the client's counter history and applies it to the running total. The counter is created when absent.
// @Tags counters
// @Accept  json
// @Produce  json
// @Param   entry body dto.AddPiecesRequest true "Piece movement"
// @Success 201 {object} dto.AddPiecesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to add pieces"
// @Security BearerAuth
// @Router /counters/pieces [post]
func (h *pieceCounterHandler) addPieces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddPiecesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	counter, entry, err := h.counterService.AddPieces(c.Request.Context(), profileIDFrom(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add pieces")
		return
	}
	c.JSON(http.StatusCreated, dto.AddPiecesResponse{
		Counter: dto.ToPieceCounterResponse(counter),
		Entry:   dto.ToPieceCounterEntryResponse(entry),
	})
}

// listCounters godoc
// @Summary List piece counters
// @Tags counters
// @Produce  json
// @Success 200 {object} dto.ListCountersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list counters"
// @Security BearerAuth
// @Router /counters [get]
func (h *pieceCounterHandler) listCounters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	counters, err := h.counterService.ListCounters(c.Request.Context(), profileIDFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to list counters")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCountersResponse(counters))
}

// getCounter godoc
// @Summary Get a piece counter with its history
// @Description Returns the counter and a page of its history, newest first.
// @Tags counters
// @Produce  json
// @Param   counterID path string true "Counter ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.PieceCounterDetailResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Counter not found"
// @Failure 500 {object} map[string]string "Failed to retrieve counter"
// @Security BearerAuth
// @Router /counters/{counterID} [get]
func (h *pieceCounterHandler) getCounter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCounterEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	counter, entries, nextToken, err := h.counterService.GetCounter(c.Request.Context(), profileIDFrom(c), c.Param("counterID"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve counter")
		return
	}
	c.JSON(http.StatusOK, dto.PieceCounterDetailResponse{
		Counter:   dto.ToPieceCounterResponse(counter),
		History:   dto.ToPieceCounterEntryResponses(entries),
		NextToken: nextToken,
	})
}

// reconcileCounter godoc
// @Summary Recompute a counter total
// @Description Resets the running total to the sum of the counter's history.
// @Tags counters
// @Produce  json
// @Param   counterID path string true "Counter ID"
// @Success 200 {object} dto.PieceCounterResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Counter not found"
// @Failure 500 {object} map[string]string "Failed to reconcile counter"
// @Security BearerAuth
// @Router /counters/{counterID}/reconcile [post]
func (h *pieceCounterHandler) reconcileCounter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	counter, err := h.counterService.ReconcileCounter(c.Request.Context(), profileIDFrom(c), c.Param("counterID"))
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile counter")
		return
	}
	c.JSON(http.StatusOK, dto.ToPieceCounterResponse(counter))
}
