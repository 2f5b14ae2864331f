package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/cart"
	"pasarku-be/internal/logger"
	"pasarku-be/internal/product"
	"pasarku-be/internal/user"

	"go.uber.org/zap"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid id")
	errNotOwner    = errors.New("you do not own this product")
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps a service error onto its HTTP status. Unrecognized errors
// are storage or programming failures; those answer a generic 500 and the
// real error stays in the server log only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, status, errorBody{Error: "internal server error"})
		return
	}

	writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, errInvalidID),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidDiscount),
		errors.Is(err, product.ErrNoFieldsToUpdate),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrProductRequired),
		errors.Is(err, cart.ErrProductNotFound):
		return http.StatusBadRequest

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrWrongRole),
		errors.Is(err, errNotOwner):
		return http.StatusForbidden

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrLineNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}
