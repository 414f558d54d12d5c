package handlers

import (
	"errors"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/internal/services"
	xhttp "github.com/Bigsouley03/cat-payment-app/pkg/http"
	"github.com/Bigsouley03/cat-payment-app/pkg/logger"
	"github.com/fasthttp/router"
)

type AuthService interface {
	Login(username, password string) (*model.User, error)
	Logout() error
	Current() *model.User
	IsAuthenticated() bool
}

type AuthHandler struct {
	svc AuthService
}

func RegisterAuthRoutes(e *router.Group, h *AuthHandler) {
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
	e.GET("/session", h.Session)
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User          *model.User `json:"user"`
	Authenticated bool        `json:"authenticated"`
}

func (h *AuthHandler) Login(ctx *xhttp.RequestCtx) {
	var req loginRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthenticationFailed) {
			// generic message, field left unnamed on purpose
			writeError(ctx, xhttp.StatusUnauthorized, services.ErrAuthenticationFailed.Error())
			return
		}
		logger.Error("failed to persist session", "error", err)
		writeError(ctx, xhttp.StatusInternalServerError, "Erreur lors de la connexion")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, map[string]*model.User{"user": user})
}

func (h *AuthHandler) Logout(ctx *xhttp.RequestCtx) {
	if err := h.svc.Logout(); err != nil {
		logger.Error("failed to clear session", "error", err)
		writeError(ctx, xhttp.StatusInternalServerError, "Erreur lors de la déconnexion")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, map[string]string{"message": "Déconnexion réussie."})
}

func (h *AuthHandler) Session(ctx *xhttp.RequestCtx) {
	writeJSON(ctx, xhttp.StatusOK, sessionResponse{
		User:          h.svc.Current(),
		Authenticated: h.svc.IsAuthenticated(),
	})
}
