package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Password length bounds accepted at registration. bcrypt only handles the
// first 72 bytes and rejects anything longer.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// TokenConfig holds the signing settings for access and refresh tokens.
type TokenConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// Claims is the JWT payload of both token kinds.
type Claims struct {
	UserID string      `json:"id"`
	Role   models.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful login or registration hands out.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput is the payload of a registration request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   TokenConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens TokenConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates an account. The very first account becomes the admin,
// every later one an editor.
func (s *AuthService) Register(input RegisterInput) (*models.User, *TokenPair, error) {
	user := &models.User{
		Name:  strings.TrimSpace(input.Name),
		Email: normalizeEmail(input.Email),
		Title: strings.TrimSpace(input.Title),
		Bio:   strings.TrimSpace(input.Bio),
		Role:  models.RoleEditor,
	}

	fields := map[string]string{}
	if err := validation.Validate(user); err != nil {
		var verr *validation.Errors
		if !errors.As(err, &verr) {
			return nil, nil, apperrors.Internal(err)
		}
		for k, v := range verr.Fields {
			fields[k] = v
		}
	}
	if len(input.Password) < MinPasswordLength {
		fields["password"] = fmt.Sprintf("Must be at least %d characters long", MinPasswordLength)
	} else if len(input.Password) > MaxPasswordLength {
		fields["password"] = fmt.Sprintf("Must be at most %d bytes long", MaxPasswordLength)
	}
	if len(fields) > 0 {
		return nil, nil, validation.NewErrors(fields)
	}

	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return nil, nil, apperrors.BadRequest("Email is already registered")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, apperrors.Internal(err)
	}

	count, err := s.userRepo.Count()
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	if count == 0 {
		user.Role = models.RoleAdmin
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	user.Password = hashed

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, nil, apperrors.BadRequest("Email is already registered")
		}
		return nil, nil, apperrors.Internal(err)
	}

	pair, err := s.issue(user)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, pair, nil
}

// Login checks the credentials and issues a token pair.
func (s *AuthService) Login(email, password string) (*models.User, *TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, apperrors.BadRequest("Please provide email and password")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, apperrors.Unauthorized("Incorrect credentials")
		}
		return nil, nil, apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperrors.Unauthorized("Incorrect credentials")
	}

	pair, err := s.issue(user)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", apperrors.Unauthorized("Refresh token not provided")
	}

	claims, err := parseToken(refreshToken, s.tokens.RefreshSecret)
	if err != nil {
		return "", apperrors.Unauthorized("Invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.Unauthorized("The user belonging to this token no longer exists")
		}
		return "", apperrors.Internal(err)
	}

	token, err := sign(user, s.tokens.AccessSecret, s.tokens.AccessTTL)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return token, nil
}

// ValidateToken parses and validates an access token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, s.tokens.AccessSecret)
}

// Authenticate resolves an access token to the user it was issued for.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, apperrors.Unauthorized("You are not logged in. Please log in to get access")
	}

	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthorized("Your session has expired. Please log in again")
		}
		return nil, apperrors.Unauthorized("Invalid token. Please log in again")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Unauthorized("The user belonging to this token no longer exists")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*TokenPair, error) {
	access, err := sign(user, s.tokens.AccessSecret, s.tokens.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := sign(user, s.tokens.RefreshSecret, s.tokens.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func sign(user *models.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func parseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
