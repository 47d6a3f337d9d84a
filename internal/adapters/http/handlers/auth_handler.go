package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	svc   ports.AuthService
	clock ports.Clock
}

// NewAuthHandler creates an AuthHandler. A nil clock uses the system clock.
func NewAuthHandler(svc ports.AuthService, clk ports.Clock) *AuthHandler {
	if clk == nil {
		clk = clock.System{}
	}
	return &AuthHandler{svc: svc, clock: clk}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tok, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.ToTokenResponse(tok, h.clock.Now()))
}
