package service

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/fitness"
	"alcyxob/fitmetric/internal/insight"
	"alcyxob/fitmetric/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

const fallbackOnboardingNote = "Welcome to FitMetric!"

// RegisterInput carries the full onboarding profile for a new member.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Gender        domain.Gender
	Age           int
	Location      domain.Location
	Goal          domain.Goal
	FitnessLevel  domain.FitnessLevel
	ActivityLevel domain.ActivityLevel
	Weight        float64 // kg
	Height        float64 // cm
	Pushups       int
}

// --- Service Interface ---
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	GetJWTSecret() string
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	generator     insight.Generator
	cache         *cache.Cache
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, generator insight.Generator, c *cache.Cache, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		userRepo:      userRepo,
		generator:     generator,
		cache:         c,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new member onboarding: it hashes the password, predicts
// the initial fitness score from the profile, asks the AI for a welcome note
// (best effort) and persists the user.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}

	// Fast duplicate check. The unique email index is the real guarantee;
	// Create below maps its duplicate-key error for the race window.
	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	score := fitness.PredictFitnessScore(fitness.ScoreInput{
		WeightKg:      input.Weight,
		HeightCm:      input.Height,
		Age:           input.Age,
		Gender:        input.Gender,
		ActivityLevel: input.ActivityLevel,
		Pushups:       input.Pushups,
		FitnessLevel:  input.FitnessLevel,
	})

	user := &domain.User{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hashedPassword),
		Gender:        input.Gender,
		Age:           input.Age,
		Location:      input.Location,
		Goal:          input.Goal,
		FitnessLevel:  input.FitnessLevel,
		ActivityLevel: input.ActivityLevel,
		Weight:        input.Weight,
		Height:        input.Height,
		Pushups:       input.Pushups,
		FitnessScore:  score,
		OnboardingNote: s.onboardingNote(ctx, input),
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	user.ID = userID

	if s.cache != nil {
		s.cache.Set("user_"+userID.Hex(), user, cache.DefaultExpiration)
	}

	user.PasswordHash = ""
	return user, nil
}

// onboardingNote asks the AI for a welcome tip and falls back to a canned
// greeting. Registration never fails over this.
func (s *authService) onboardingNote(ctx context.Context, input RegisterInput) string {
	bmi := 0.0
	if input.Height > 0 && input.Weight > 0 {
		meters := input.Height / 100
		bmi = input.Weight / (meters * meters)
	}
	note, err := s.generator.OnboardingInsight(ctx, insight.OnboardingProfile{
		Name:         input.Name,
		Goal:         string(input.Goal),
		BMI:          bmi,
		Age:          input.Age,
		Gender:       string(input.Gender),
		FitnessLevel: string(input.FitnessLevel),
	})
	if err != nil {
		if !errors.Is(err, insight.ErrUnavailable) {
			log.Printf("WARN: onboarding insight failed: %v", err)
		}
		return fallbackOnboardingNote
	}
	return note
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if email == "" || password == "" {
		err = errors.New("email and password cannot be empty")
		return
	}

	user, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAuthenticationFailed
			return
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		err = ErrAuthenticationFailed
		user = nil
		return
	}

	token, err = s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	if s.cache != nil {
		s.cache.Set("user_"+user.ID.Hex(), user, cache.DefaultExpiration)
	}
	return token, user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fitmetric",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
