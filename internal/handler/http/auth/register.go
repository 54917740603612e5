package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	userUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/user"
)

type registerRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"your_password"`
}

type registerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterHandler handles new account creation.
type RegisterHandler struct{ Svc *userUC.Service }

func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userUC.ErrUsernameTaken) {
			respond.Error(w, http.StatusConflict, err)
			return
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusCreated, registerResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
