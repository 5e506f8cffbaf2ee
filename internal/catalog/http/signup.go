package http

import (
	"errors"
	"net/http"

	"github.com/pagebound/pagebound/internal/catalog/service"
	"github.com/pagebound/pagebound/pkg/catalogsdk"
	"github.com/pagebound/pagebound/pkg/httpx"
	"github.com/pagebound/pagebound/pkg/slogx"
)

type SignupHandler struct {
	AccountService *service.AccountService
}

type signupRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=3,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// ServeHTTP godoc
//
//	@Summary		Signup Endpoint
//	@Description	Create a new user account. The password is salted and hashed server-side;
//	@Description	neither the plaintext nor the salt ever appears in a response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		catalogsdk.SignupRequest	true	"name (optional), email, password"
//	@Success		201		{object}	catalogsdk.UserResponse		"created user"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"validation failed"
//	@Failure		409		{object}	catalogsdk.ErrorResponse	"email already registered"
//	@Router			/api/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.AccountService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		log.Error("signup failed", "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong while signing up")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, catalogsdk.UserResponse{
		Status:  catalogsdk.StatusSuccess,
		Message: "Signup successful",
		Data:    userPayload(user),
	})
}
