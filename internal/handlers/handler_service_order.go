package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/SscSPs/costureira_pro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// serviceOrderHandler handles HTTP requests related to service orders.
type serviceOrderHandler struct {
	serviceOrderService portssvc.ServiceOrderSvcFacade
}

func registerServiceOrderRoutes(rg *gin.RouterGroup, serviceOrderService portssvc.ServiceOrderSvcFacade) {
	h := &serviceOrderHandler{serviceOrderService: serviceOrderService}

	services := rg.Group("/services")
	{
		services.POST("", h.createServiceOrder)
		services.GET("", h.listServiceOrders)
		services.GET("/:serviceID", h.getServiceOrder)
		services.PUT("/:serviceID", h.updateServiceOrder)
		services.PATCH("/:serviceID/status", h.updateServiceStatus)
		services.DELETE("/:serviceID", h.deleteServiceOrder)
	}
}

// createServiceOrder godoc
// @Summary Create a service order
// @Description Records a sewing job. The client is given by ID or by name; an unknown name creates the client. The client's statistics are recomputed in the same transaction.
// @Tags services
// @Accept  json
// @Produce  json
// @Param   service body dto.CreateServiceOrderRequest true "Service order details"
// @Success 201 {object} dto.ServiceOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to create service order"
// @Security BearerAuth
// @Router /services [post]
func (h *serviceOrderHandler) createServiceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	order, err := h.serviceOrderService.CreateServiceOrder(c.Request.Context(), profileIDFrom(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create service order")
		return
	}
	logger.Info("Service order created", slog.String("service_id", order.ServiceID), slog.String("client_id", order.ClientID))
	c.JSON(http.StatusCreated, dto.ToServiceOrderResponse(order))
}

// listServiceOrders godoc
// @Summary List service orders
// @Description Lists service orders newest first with token based pagination.
// @Tags services
// @Produce  json
// @Param   status query string false "Filter by status" Enums(progress, delivered, paid)
// @Param   clientID query string false "Filter by client"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListServiceOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list service orders"
// @Security BearerAuth
// @Router /services [get]
func (h *serviceOrderHandler) listServiceOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListServiceOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	orders, nextToken, err := h.serviceOrderService.ListServiceOrders(c.Request.Context(), profileIDFrom(c), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list service orders")
		return
	}
	c.JSON(http.StatusOK, dto.ListServiceOrdersResponse{
		Services:  dto.ToServiceOrderResponses(orders),
		NextToken: nextToken,
	})
}

// getServiceOrder godoc
// @Summary Get a service order
// @Tags services
// @Produce  json
// @Param   serviceID path string true "Service order ID"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve service order"
// @Security BearerAuth
// @Router /services/{serviceID} [get]
func (h *serviceOrderHandler) getServiceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.serviceOrderService.GetServiceOrder(c.Request.Context(), profileIDFrom(c), c.Param("serviceID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve service order")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// updateServiceOrder godoc
// @Summary Update a service order
// @Description Updates any field of a service order. Moving the order to another client recomputes both clients.
// @Tags services
// @Accept  json
// @Produce  json
// @Param   serviceID path string true "Service order ID"
// @Param   service body dto.UpdateServiceOrderRequest true "Fields to update"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service order or client not found"
// @Failure 500 {object} map[string]string "Failed to update service order"
// @Security BearerAuth
// @Router /services/{serviceID} [put]
func (h *serviceOrderHandler) updateServiceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	order, err := h.serviceOrderService.UpdateServiceOrder(c.Request.Context(), profileIDFrom(c), c.Param("serviceID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update service order")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// updateServiceStatus godoc
// @Summary Change the status of a service order
// @Tags services
// @Accept  json
// @Produce  json
// @Param   serviceID path string true "Service order ID"
// @Param   status body dto.UpdateServiceStatusRequest true "New status"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service order not found"
// @Failure 500 {object} map[string]string "Failed to update service order"
// @Security BearerAuth
// @Router /services/{serviceID}/status [patch]
func (h *serviceOrderHandler) updateServiceStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	order, err := h.serviceOrderService.UpdateServiceStatus(c.Request.Context(), profileIDFrom(c), c.Param("serviceID"), req.Status)
	if err != nil {
		respondError(c, logger, err, "Failed to update service order")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// deleteServiceOrder godoc
// @Summary Delete a service order
// @Description Deletes a service order and recomputes its client's statistics.
// @Tags services
// @Param   serviceID path string true "Service order ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service order not found"
// @Failure 500 {object} map[string]string "Failed to delete service order"
// @Security BearerAuth
// @Router /services/{serviceID} [delete]
func (h *serviceOrderHandler) deleteServiceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("serviceID")

	if err := h.serviceOrderService.DeleteServiceOrder(c.Request.Context(), profileIDFrom(c), serviceID); err != nil {
		respondError(c, logger, err, "Failed to delete service order")
		return
	}
	logger.Info("Service order deleted", slog.String("service_id", serviceID))
	c.Status(http.StatusNoContent)
}
