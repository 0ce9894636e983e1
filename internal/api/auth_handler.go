package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name          string               `json:"name" binding:"required"`
	Email         string               `json:"email" binding:"required,email"`
	Password      string               `json:"password" binding:"required,min=8"`
	Gender        domain.Gender        `json:"gender" binding:"required,oneof=male female other"`
	Age           int                  `json:"age" binding:"required,gt=0"`
	Location      domain.Location      `json:"location"`
	Goal          domain.Goal          `json:"goal" binding:"required"`
	FitnessLevel  domain.FitnessLevel  `json:"fitnessLevel"`
	ActivityLevel domain.ActivityLevel `json:"activityLevel"`
	Weight        float64              `json:"weight"` // kg
	Height        float64              `json:"height"` // cm
	Pushups       int                  `json:"pushups"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Goal           domain.Goal          `json:"goal"`
	FitnessLevel   domain.FitnessLevel  `json:"fitnessLevel"`
	ActivityLevel  domain.ActivityLevel `json:"activityLevel"`
	FitnessScore   int                  `json:"fitnessScore"`
	OnboardingNote string               `json:"onboardingNote,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates a new member account from the onboarding profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Gender:        req.Gender,
		Age:           req.Age,
		Location:      req.Location,
		Goal:          req.Goal,
		FitnessLevel:  req.FitnessLevel,
		ActivityLevel: req.ActivityLevel,
		Weight:        req.Weight,
		Height:        req.Height,
		Pushups:       req.Pushups,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates a member and returns a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:             user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		Goal:           user.Goal,
		FitnessLevel:   user.FitnessLevel,
		ActivityLevel:  user.ActivityLevel,
		FitnessScore:   user.FitnessScore,
		OnboardingNote: user.OnboardingNote,
		CreatedAt:      user.CreatedAt,
	}
}
