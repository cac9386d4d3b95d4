package controllers

import (
	"errors"
	"net/http"

	"coffeeshop/pkg/resp"
	"coffeeshop/services"
	"coffeeshop/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required"); return
	}

	user, err := a.Svc.Register(req.Email, req.Password)
	switch {
	case err == nil:
		resp.Created(c, gin.H{"id": user.ID, "email": user.Email})
	case errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, "email already registered")
	case errors.Is(err, services.ErrBadInput):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c)
	}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required"); return
	}

	user, token, err := a.Svc.Login(req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": user.ID, "token": token})
	case errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, "user not found")
	case errors.Is(err, services.ErrWrongPassword):
		resp.Unauthorized(c, "wrong password")
	case errors.Is(err, services.ErrBadInput):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c)
	}
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found"); return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "createdAt": user.CreatedAt})
}
