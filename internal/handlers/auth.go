package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/designertech992/stocks-forecast/internal/models"
	"github.com/designertech992/stocks-forecast/internal/services"
)

type AuthHandler struct {
	auth services.AuthProvider
}

func NewAuthHandler(auth services.AuthProvider) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// POST /api/auth/signin
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.Credentials true "Credentials"
// @Success 200 {object} models.Session
// @Failure 400 {string} string "Bad request"
// @Router /auth/signin [post]
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	h.handleCredentials(w, r, h.auth.SignIn)
}

// POST /api/auth/signup
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.Credentials true "Credentials"
// @Success 200 {object} models.Session
// @Failure 400 {string} string "Bad request"
// @Router /auth/signup [post]
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	h.handleCredentials(w, r, h.auth.SignUp)
}

func (h *AuthHandler) handleCredentials(w http.ResponseWriter, r *http.Request,
	call func(ctx context.Context, creds models.Credentials) (*models.Session, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}
	session, err := call(r.Context(), creds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// POST /api/auth/signout
// @Summary Sign out the current session
// @Tags auth
// @Security BearerAuth
// @Success 204 {string} string "Signed out"
// @Router /auth/signout [post]
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.auth.SignOut(r.Context(), bearerToken(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/auth/session
// @Summary Resolve the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Session
// @Failure 401 {string} string "Unauthorized"
// @Router /auth/session [get]
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session, err := h.auth.GetSession(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if session == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// GET /api/auth/oauth/{provider}?redirect_to=...
// @Summary Start an OAuth sign in
// @Tags auth
// @Produce json
// @Param provider path string true "OAuth provider (e.g., google)"
// @Param redirect_to query string false "Where the provider should send the user back"
// @Success 200 {object} map[string]string
// @Router /auth/oauth/{provider} [get]
func (h *AuthHandler) HandleOAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	url, err := h.auth.SignInWithOAuth(r.Context(), mux.Vars(r)["provider"], r.URL.Query().Get("redirect_to"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
