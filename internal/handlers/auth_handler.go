package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/upadhyayaniket29/student-management-system/internal/auth"
	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type AuthHandler struct {
	users    store.UserStore
	authn    *auth.Authenticator
	activity *services.ActivityLogger
}

func NewAuthHandler(users store.UserStore, authn *auth.Authenticator, activity *services.ActivityLogger) *AuthHandler {
	return &AuthHandler{users: users, authn: authn, activity: activity}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// StudentSignup registers a new student account
func (h *AuthHandler) StudentSignup(w http.ResponseWriter, r *http.Request) {
	h.signup(w, r, models.RoleStudent)
}

// AdminSignup registers a new admin account
func (h *AuthHandler) AdminSignup(w http.ResponseWriter, r *http.Request) {
	h.signup(w, r, models.RoleAdmin)
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	var req signupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
		http.Error(w, "Email already in use", http.StatusBadRequest)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Failed to check email availability", http.StatusInternalServerError)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	user, err := h.users.Insert(ctx, models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// The unique email index may reject a duplicate that slipped past
		// the pre-check.
		if errors.Is(err, store.ErrDuplicate) {
			http.Error(w, "Email already in use", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	token, err := h.authn.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	h.setTokenCookie(w, token)

	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates a user and issues a token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if !user.IsActive {
		http.Error(w, "Account is deactivated", http.StatusUnauthorized)
		return
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.authn.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	h.setTokenCookie(w, token)

	h.activity.Log(ctx, user.ID, models.ActionLogin, "Logged in", bson.M{"email": user.Email})

	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   false,
		Path:     "/api",
	})
}
