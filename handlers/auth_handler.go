package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Samuel-pydev/Spill-Zone-bck/apperrors"
	"github.com/Samuel-pydev/Spill-Zone-bck/auth"
	"github.com/Samuel-pydev/Spill-Zone-bck/dto"
	"github.com/Samuel-pydev/Spill-Zone-bck/middleware"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
	"github.com/Samuel-pydev/Spill-Zone-bck/monitoring"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
)

// AuthHandler handles signup, login and account lookups
type AuthHandler struct {
	Users  repositories.UserRepository
	Tokens *auth.TokenService
}

func NewAuthHandler(users repositories.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a new account and returns a token right away.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{Username: req.Username, PasswordHash: hashed}
	if err := h.Users.Create(&user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		logrus.WithError(err).Error("signup failed")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := h.Tokens.Issue(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error issuing token")
		return
	}

	monitoring.SignupSuccess.Inc()
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login verifies credentials and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.Users.FindByUsername(req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	// A missing user and a wrong password fail identically.
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		monitoring.LoginFailure.WithLabelValues("invalid credentials").Inc()
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Issue(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error issuing token")
		return
	}

	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// CheckUsername reports whether a username is taken.
func (h *AuthHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	exists, err := h.Users.Exists(username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if exists {
		writeJSON(w, http.StatusOK, map[string]interface{}{"exists": true, "username": username})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"exists": false})
}

// Me returns the authenticated caller's identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": user.ID, "username": user.Username})
}
