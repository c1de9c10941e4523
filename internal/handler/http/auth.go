package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-portal-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	meta := auth.LoginMeta{SourceAddress: sourceAddress(r)}
	sessionResp, err := h.authService.Login(r.Context(), loginReq, meta)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in", "username", sessionResp.Username)
	response.SuccessWithMessage(w, "Login successful", sessionResp)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", map[string]string{"redirect": "/login"})
}

// Session implements AuthHandler. Page renderers read the session view from
// here; they never touch session state directly.
func (h *authHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	sessionResp, err := h.authService.CurrentSession(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessionResp)
}

// sourceAddress extracts the best-effort client IP for the audit log.
func sourceAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
