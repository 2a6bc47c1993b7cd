package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/SscSPs/costureira_pro/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService    portssvc.ClientSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := &clientHandler{clientService: clientService, reportingService: reportingService}

	clients := rg.Group("/clients")
	{
		clients.POST("/resolve", h.resolveClient)
		clients.GET("/export", h.exportClients)
		clients.GET("", h.listClients)
		clients.POST("", h.createClient)
		clients.GET("/:clientID", h.getClient)
		clients.PUT("/:clientID", h.updateClient)
		clients.POST("/:clientID/favorite", h.setFavorite)
		clients.DELETE("/:clientID", h.deleteClient)
		clients.POST("/:clientID/reconcile", h.reconcileClient)
	}
}

// resolveClient godoc
// @Summary Find or create a client by name
// @Description Returns the ID of the client whose name matches case-insensitively, creating the client with zeroed statistics when none exists.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.ResolveClientRequest true "Client name"
// @Success 200 {object} dto.ResolveClientResponse "Existing client"
// @Success 201 {object} dto.ResolveClientResponse "Client created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to resolve client"
// @Security BearerAuth
// @Router /clients/resolve [post]
func (h *clientHandler) resolveClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	clientID, created, err := h.clientService.ResolveOrCreateClient(c.Request.Context(), profileIDFrom(c), req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve client")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.Info("Client created by name", slog.String("client_id", clientID))
	}
	c.JSON(status, dto.ResolveClientResponse{ClientID: clientID, Created: created})
}

// createClient godoc
// @Summary Create a client
// @Description Creates a client with contact details. When the name is already taken the existing client is returned with status 200.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Success 200 {object} dto.ClientResponse "Client already existed"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create client"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	client, created, err := h.clientService.CreateClient(c.Request.Context(), profileIDFrom(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create client")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.Info("Client created", slog.String("client_id", client.ClientID))
	}
	c.JSON(status, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists the clients of the current account ordered by name.
// @Tags clients
// @Produce  json
// @Param   search query string false "Case-insensitive name filter"
// @Param   favorites query bool false "Only favorites"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListClientsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), profileIDFrom(c), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// getClient godoc
// @Summary Get a client
// @Description Returns a client with its derived statistics.
// @Tags clients
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to retrieve client"
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	client, err := h.clientService.GetClient(c.Request.Context(), profileIDFrom(c), c.Param("clientID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Description Updates contact details. Statistics are derived and cannot be set.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Name already used by another client"
// @Failure 500 {object} map[string]string "Failed to update client"
// @Security BearerAuth
// @Router /clients/{clientID} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), profileIDFrom(c), c.Param("clientID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// setFavorite godoc
// @Summary Mark or unmark a client as favorite
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Param   favorite body dto.SetFavoriteRequest true "Favorite flag"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to update client"
// @Security BearerAuth
// @Router /clients/{clientID}/favorite [post]
func (h *clientHandler) setFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	client, err := h.clientService.SetFavorite(c.Request.Context(), profileIDFrom(c), c.Param("clientID"), *req.IsFavorite)
	if err != nil {
		respondError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Deletes a client together with its service orders and piece counter.
// @Tags clients
// @Param   clientID path string true "Client ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to delete client"
// @Security BearerAuth
// @Router /clients/{clientID} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	if err := h.clientService.DeleteClient(c.Request.Context(), profileIDFrom(c), clientID); err != nil {
		respondError(c, logger, err, "Failed to delete client")
		return
	}
	logger.Info("Client deleted", slog.String("client_id", clientID))
	c.Status(http.StatusNoContent)
}

// reconcileClient godoc
// @Summary Recompute client statistics
// @Description Re-derives total spent and last service date from the client's service orders.
// @Tags clients
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to reconcile client"
// @Security BearerAuth
// @Router /clients/{clientID}/reconcile [post]
func (h *clientHandler) reconcileClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	client, err := h.clientService.ReconcileClientStats(c.Request.Context(), profileIDFrom(c), c.Param("clientID"))
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// exportClients godoc
// @Summary Export clients to Excel
// @Description Downloads every client of the account as an .xlsx workbook.
// @Tags clients
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export clients"
// @Security BearerAuth
// @Router /clients/export [get]
func (h *clientHandler) exportClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Buffered so a failure halfway does not leave a truncated 200 response.
	var buf bytes.Buffer
	if err := h.reportingService.ExportClients(c.Request.Context(), profileIDFrom(c), &buf); err != nil {
		respondError(c, logger, err, "Failed to export clients")
		return
	}

	filename := fmt.Sprintf("clientes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
