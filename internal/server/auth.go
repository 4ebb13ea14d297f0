package server

import (
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const roleAdmin = "admin"

type adminClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.cfg.Auth.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &adminClaims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return respondError(c, http.StatusUnauthorized, "Authentication required")
		},
	})
}

// adminOnly restricts a route to tokens carrying the admin role.
func (s *Server) adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return respondError(c, http.StatusUnauthorized, "Authentication required")
		}
		claims, ok := token.Claims.(*adminClaims)
		if !ok || claims.Role != roleAdmin {
			return respondError(c, http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "Email and password are required")
	}

	user, err := s.store.GetUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		// Same answer for unknown user and bad password.
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.Auth.TokenTTL)
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return respondError(c, http.StatusInternalServerError, "Something went wrong!")
	}

	return respondData(c, http.StatusOK, loginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		Name:      user.Name,
		Email:     user.Email,
	})
}
