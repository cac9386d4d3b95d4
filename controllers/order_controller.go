package controllers

import (
	"errors"

	"coffeeshop/pkg/resp"
	"coffeeshop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /order — ใส่ userId มาก็เป็นออเดอร์ของ user, ไม่ใส่ก็เป็น guest
func (h *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "items are required"); return
	}

	out, err := h.Svc.Place(&req)
	switch {
	case err == nil:
		resp.OK(c, out)
	case errors.Is(err, services.ErrBadInput):
		resp.BadRequest(c, "items are required and quantity must be at least 1")
	case errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, "item not on the menu")
	default:
		resp.ServerError(c)
	}
}

// GET /orders/:userId
func (h *OrderController) ListForUser(c *gin.Context) {
	views, err := h.Svc.ListForUser(c.Param("userId"))
	switch {
	case err == nil:
		resp.OK(c, views)
	case errors.Is(err, services.ErrNoOrders):
		resp.NotFound(c, "no orders found for the given user")
	default:
		resp.ServerError(c)
	}
}

// GET /guest-orders/:orderId
func (h *OrderController) GuestDetail(c *gin.Context) {
	view, err := h.Svc.GuestDetail(c.Param("orderId"))
	switch {
	case err == nil:
		resp.OK(c, view)
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c)
	}
}
