package controllers

import (
	"errors"

	"coffeeshop/pkg/resp"
	"coffeeshop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type cartItemRequest struct {
	UserID string `json:"userId" binding:"required"`
	ItemID int    `json:"itemId" binding:"required"`
}

// POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "userId and itemId are required"); return
	}

	err := h.Svc.Add(req.UserID, req.ItemID)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"message": "item added to cart"})
	case errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, "user not found")
	case errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, "item not on the menu")
	default:
		resp.ServerError(c)
	}
}

// POST /cart/remove — idempotent, ลบของที่ไม่มีอยู่ก็ตอบ ok
func (h *CartController) Remove(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "userId and itemId are required"); return
	}

	if err := h.Svc.Remove(req.UserID, req.ItemID); err != nil {
		resp.ServerError(c); return
	}
	resp.OK(c, gin.H{"message": "item removed from cart"})
}

// GET /cart/:userId
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(c.Param("userId"))
	switch {
	case err == nil:
		resp.OK(c, view)
	case errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, "user not found")
	default:
		resp.ServerError(c)
	}
}
