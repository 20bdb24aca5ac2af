package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascendai/backend/auth"
	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/storage"
)

// AuthHandler handles account registration, login and profile requests
type AuthHandler struct {
	store      AccountStore
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store AccountStore, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		store:      store,
		jwtService: jwtService,
	}
}

// Signup registers a new user account
// @Summary Register a new user
// @Description Create an account with name, email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.AuthResponse "Account created"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process signup",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "An account with this email already exists",
				Code:  http.StatusConflict,
			})
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create account",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		User:    user.Summary(),
		Token:   token,
		Message: "Account created successfully",
	})
}

// Login authenticates a user with email and password
// @Summary Log in
// @Description Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[AuthHandler] Failed to look up user: %v", err)
		}
		// Same response for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		User:    user.Summary(),
		Token:   token,
		Message: "Login successful",
	})
}

// Profile returns a user with resumes and shortlisted jobs populated
// @Summary Get user profile
// @Description Fetch a user's profile with resume and shortlist details populated
// @Tags Auth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Profile "User profile"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/profile/{userId} [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.Param("userId")

	profile, err := h.store.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[AuthHandler] Failed to load profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
