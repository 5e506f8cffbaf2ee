package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pagebound/pagebound/pkg/catalogsdk"
	"github.com/pagebound/pagebound/pkg/httpx"
	"github.com/pagebound/pagebound/pkg/slogx"
)

// validate is shared across handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation. On failure it writes the 400 envelope and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		log := slogx.FromContext(r.Context())

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			log.Info("request validation failed",
				"field", verrs[0].Field(), "rule", verrs[0].Tag())
		}
		writeError(w, http.StatusBadRequest, "validation failed")
		return false
	}

	return true
}

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, catalogsdk.ErrorResponse{
		Status:  catalogsdk.StatusError,
		Message: message,
		Data:    nil,
	})
}
