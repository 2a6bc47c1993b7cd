package dto

import (
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/utils"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of delivery dates.
const DateLayout = "2006-01-02"

// CreateServiceOrderRequest defines the data needed to create a service order.
// The client is given either by ID or by name; a new name creates the client.
type CreateServiceOrderRequest struct {
	ClientID     string               `json:"clientID"`
	ClientName   string               `json:"clientName" binding:"required_without=ClientID,max=120"`
	Description  string               `json:"description" binding:"required,max=500"`
	Value        decimal.Decimal      `json:"value" binding:"gte=0"`
	DeliveryDate *string              `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	Status       domain.ServiceStatus `json:"status" binding:"omitempty,oneof=progress delivered paid"`
}

// UpdateServiceOrderRequest defines the data allowed for updating a service order.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateServiceOrderRequest struct {
	ClientID          *string               `json:"clientID"`
	ClientName        *string               `json:"clientName" binding:"omitempty,max=120"`
	Description       *string               `json:"description" binding:"omitempty,max=500"`
	Value             *decimal.Decimal      `json:"value" binding:"omitempty,gte=0"`
	DeliveryDate      *string               `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	ClearDeliveryDate bool                  `json:"clearDeliveryDate"`
	Status            *domain.ServiceStatus `json:"status" binding:"omitempty,oneof=progress delivered paid"`
}

// UpdateServiceStatusRequest changes only the status.
type UpdateServiceStatusRequest struct {
	Status domain.ServiceStatus `json:"status" binding:"required,oneof=progress delivered paid"`
}

// ServiceOrderResponse defines the data returned for a service order.
type ServiceOrderResponse struct {
	ServiceID     string               `json:"serviceID"`
	ClientID      string               `json:"clientID"`
	ClientName    string               `json:"clientName"`
	Description   string               `json:"description"`
	Value         decimal.Decimal      `json:"value"`
	DeliveryDate  *string              `json:"deliveryDate"`
	Status        domain.ServiceStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ListServiceOrdersParams defines query parameters for listing service orders.
type ListServiceOrdersParams struct {
	Status    domain.ServiceStatus `form:"status" binding:"omitempty,oneof=progress delivered paid"`
	ClientID  string               `form:"clientID"`
	Limit     int                  `form:"limit,default=20" binding:"omitempty,min=1,max=200"`
	NextToken *string              `form:"nextToken"`
}

// ListServiceOrdersResponse wraps a page of service orders.
type ListServiceOrdersResponse struct {
	Services  []ServiceOrderResponse `json:"services"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToServiceOrderResponse converts a domain.ServiceOrder to ServiceOrderResponse DTO.
func ToServiceOrderResponse(o *domain.ServiceOrder) ServiceOrderResponse {
	var delivery *string
	if o.DeliveryDate != nil {
		d := o.DeliveryDate.Format(DateLayout)
		delivery = &d
	}
	return ServiceOrderResponse{
		ServiceID:     o.ServiceID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		Description:   o.Description,
		Value:         utils.RoundMoney(o.Value),
		DeliveryDate:  delivery,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		LastUpdatedAt: o.LastUpdatedAt,
	}
}

// ToServiceOrderResponses converts a slice of domain.ServiceOrder.
func ToServiceOrderResponses(orders []domain.ServiceOrder) []ServiceOrderResponse {
	res := make([]ServiceOrderResponse, len(orders))
	for i := range orders {
		res[i] = ToServiceOrderResponse(&orders[i])
	}
	return res
}
