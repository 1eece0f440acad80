package api

import (
	"net/http"
	"time"

	"github.com/example/catalog-cart/internal/api/middleware"
	"github.com/example/catalog-cart/internal/auth"
	"go.uber.org/zap"
)

type SessionHandlers struct {
	tokens *auth.SessionTokens
	logger *zap.Logger
}

func NewSessionHandlers(tokens *auth.SessionTokens, logger *zap.Logger) *SessionHandlers {
	return &SessionHandlers{tokens: tokens, logger: logger}
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateSession starts an anonymous shopping session and sets its cookie.
func (h *SessionHandlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, token, expiresAt, err := h.tokens.Issue()
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.Error(err))
		respondError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusCreated, SessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetSession reports the current session; it is mounted behind RequireSession.
func (h *SessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"session_id": claims.SessionID,
		"expires_at": claims.ExpiresAt.Time,
	})
}
