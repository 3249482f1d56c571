package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/server/http/dto"
)

const orderNotFoundDetail = "Pedido não encontrado"

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{FlavorName: it.FlavorName, Quantity: it.Quantity, Price: it.Price})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), model.OrderDraft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder), errors.Is(err, domainErrors.ErrInvalidItem):
			abortWithDetail(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, orderNotFoundDetail)
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PUT /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			abortWithDetail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			abortWithDetail(c, http.StatusNotFound, orderNotFoundDetail)
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemPayload, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemPayload{FlavorName: it.FlavorName, Quantity: it.Quantity, Price: it.Price})
	}
	return dto.OrderResponse{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
