package http

import (
	"errors"
	"net/http"

	"github.com/pagebound/pagebound/internal/catalog/service"
	"github.com/pagebound/pagebound/pkg/catalogsdk"
	"github.com/pagebound/pagebound/pkg/httpx"
	"github.com/pagebound/pagebound/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a signed session token. Unknown email and
//	@Description	wrong password are deliberately indistinguishable in the response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		catalogsdk.LoginRequest		true	"email, password"
//	@Success		200		{object}	catalogsdk.LoginResponse	"user plus access_token"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"validation failed"
//	@Failure		401		{object}	catalogsdk.ErrorResponse	"invalid email or password"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := h.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		log.Error("login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong while logging in")
		return
	}

	// Convenience for clients that read the header instead of the body.
	w.Header().Set("Authorization", "Bearer "+token)
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.LoginResponse{
		Status:  catalogsdk.StatusSuccess,
		Message: "Login successful",
		Data: catalogsdk.LoginPayload{
			UserPayload: userPayload(user),
			AccessToken: token,
		},
	})
}
