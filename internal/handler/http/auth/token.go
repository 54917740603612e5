package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/requestid"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	userUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/user"
)

type loginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenHandler creates an HTTP handler that authenticates users and issues JWT tokens.
// The token subject carries the user's ID.
//
// @Summary      Obtain a JWT token
// @Description  Authenticates with username and password and issues a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login credentials"
// @Success      200 {object} tokenResponse "JWT token"
// @Failure      400 {string} string "malformed request"
// @Failure      401 {string} string "authentication failed"
// @Failure      500 {string} string "token generation failed"
// @Router       /auth/token [post]
func TokenHandler(svc *userUC.Service, expiry time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		user, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.Error(w, http.StatusUnauthorized, errors.New("invalid username or password"))
			return
		}

		secret := signingSecret()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":      strconv.FormatInt(user.ID, 10),
			"username": user.Username,
			"exp":      time.Now().Add(expiry).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.Int64("user_id", user.ID),
			slog.String("username", user.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed})
	}
}
