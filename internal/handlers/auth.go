package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/middleware"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/firebase"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// GoogleTokenValidator checks a Google ID token against an OAuth client id
type GoogleTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthConfig carries the settings the auth endpoints need
type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	GoogleClientID string
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	firebaseAuth   firebase.IDTokenVerifier
	validateGoogle GoogleTokenValidator
	cfg            AuthConfig
	now            func() time.Time
}

// NewAuthHandler creates a new AuthHandler. firebaseAuth may be nil, which
// disables the Firebase sign-in endpoint.
func NewAuthHandler(userRepo repositories.UserRepository, cfg AuthConfig, firebaseAuth firebase.IDTokenVerifier) *AuthHandler {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthHandler{
		userRepository: userRepo,
		firebaseAuth:   firebaseAuth,
		validateGoogle: idtoken.Validate,
		cfg:            cfg,
		now:            time.Now,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/google", h.GoogleLogin)
	if h.firebaseAuth != nil {
		g.POST("/firebase", h.FirebaseLogin)
	}
	g.POST("/update-profile", h.UpdateProfile)
	g.GET("/me", h.Me, middleware.JWTAuthMiddleware(h.cfg.JWTSecret, false))
}

// Register handles local user registration with email and password
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if exists, err := h.userRepository.ExistsByEmail(ctx, req.Email); err != nil {
		return httpError(err, "User")
	} else if exists {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is already in use!")
	}
	if exists, err := h.userRepository.ExistsByUsername(ctx, req.Username); err != nil {
		return httpError(err, "User")
	} else if exists {
		return echo.NewHTTPError(http.StatusBadRequest, "Username is already in use!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		FullName:  strings.TrimSpace(req.FullName),
		CreatedAt: h.now().UTC(),
	}
	if err := h.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return echo.NewHTTPError(http.StatusBadRequest, "Email or username is already in use!")
		}
		return httpError(err, "User")
	}

	return h.respondWithToken(c, user)
}

// Login authenticates with an email or username plus password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmailOrUsername(c.Request().Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}
		return httpError(err, "User")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid password")
	}

	return h.respondWithToken(c, user)
}

// GoogleLogin verifies a Google ID token and signs the user in, creating the
// account on first sight
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req models.GoogleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	payload, err := h.validateGoogle(ctx, req.Credential, h.cfg.GoogleClientID)
	if err != nil {
		log.Printf("Google token rejected: %v", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Google token")
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if strings.TrimSpace(email) == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Google token has no email")
	}

	user, err := h.findOrCreateExternalUser(ctx, strings.TrimSpace(email), name, picture)
	if err != nil {
		return httpError(err, "User")
	}
	return h.respondWithToken(c, user)
}

// FirebaseLogin handles Firebase ID token verification and issues a local JWT
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	token, err := h.firebaseAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}
	identity, err := firebase.IdentityFromToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	user, err := h.findOrCreateExternalUser(ctx, identity.Email, identity.Name, identity.Picture)
	if err != nil {
		return httpError(err, "User")
	}
	return h.respondWithToken(c, user)
}

// Me returns the user the bearer token belongs to
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	email := claims.Subject
	if email == "" {
		email = claims.Email
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		return httpError(err, "User")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile overwrites full name and bio; the picture only when one is sent
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req models.ProfileUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, _ := primitive.ObjectIDFromHex(req.ID)

	user, err := h.userRepository.UpdateProfile(c.Request().Context(), id,
		strings.TrimSpace(req.FullName), strings.TrimSpace(req.Bio), strings.TrimSpace(req.ProfilePicture))
	if err != nil {
		return httpError(err, "User")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) findOrCreateExternalUser(ctx context.Context, email, name, picture string) (*models.User, error) {
	user, err := h.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	username, err := h.uniqueUsername(ctx, name, email)
	if err != nil {
		return nil, err
	}
	// the account can only be used through the external provider
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Username:       username,
		Email:          email,
		Password:       string(hashedPassword),
		FullName:       strings.TrimSpace(name),
		ProfilePicture: picture,
		CreatedAt:      h.now().UTC(),
	}
	if err := h.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			// a concurrent sign-in created the account first
			return h.userRepository.GetUserByEmail(ctx, email)
		}
		return nil, err
	}
	log.Printf("Created user %s from external sign-in", user.Username)
	return user, nil
}

// uniqueUsername starts from the display name (or the email's local part) and
// appends a counter until the name is free
func (h *AuthHandler) uniqueUsername(ctx context.Context, name, email string) (string, error) {
	base := strings.TrimSpace(name)
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}

	candidate := base
	for i := 1; i <= 50; i++ {
		exists, err := h.userRepository.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(i)
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func (h *AuthHandler) respondWithToken(c echo.Context, user *models.User) error {
	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// generateJWT generates a JWT token keyed to the user's email
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	now := h.now()
	claims := &models.JwtCustomClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
