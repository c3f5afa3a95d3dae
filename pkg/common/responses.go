package common

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	pkgerrors "portfolio/pkg/errors"
)

// SuccessResponse is returned by write endpoints that have nothing else to say.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// RespondJSON writes data as the whole response body.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// RespondSuccess writes {"success":true}.
func RespondSuccess(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// ParseJSONBody decodes a JSON request body no larger than maxBytes. Unknown
// fields are tolerated so older clients keep working.
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return pkgerrors.NewTooLargeError(maxBytes)
		}
		return pkgerrors.NewValidationError("failed to read request body").WithCause(err)
	}
	if len(data) == 0 {
		return pkgerrors.NewValidationError("request body is empty")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return pkgerrors.NewValidationError("invalid JSON body").WithCause(err)
	}
	return nil
}
