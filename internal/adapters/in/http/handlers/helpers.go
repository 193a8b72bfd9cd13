// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	cartdom "cartledger/internal/domain/cart"
	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainErr maps the error taxonomy onto HTTP statuses:
// invalid id / validation -> 400, not found -> 404, not owner -> 403,
// anything else (storage included) -> 500.
func writeDomainErr(w http.ResponseWriter, err error) {
	var ve *itemdom.ValidationError
	switch {
	case errors.Is(err, common.ErrInvalidID):
		writeErr(w, http.StatusBadRequest, "invalid id")
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":      "validation failed",
			"violations": ve.Violations,
		})
	case errors.Is(err, cartdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "cart not found")
	case errors.Is(err, itemdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "cart item not found")
	case errors.Is(err, common.ErrUnauthorized):
		writeErr(w, http.StatusForbidden, "not the cart owner")
	default:
		log.Printf("[handlers] internal error: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
}
