package http

import (
	"net/http"

	"github.com/MauricioMilano/kwan-challenge/internal/utils"
	"github.com/MauricioMilano/kwan-challenge/models"
)

// allowed is the permission evaluator invoked by every task handler before it
// touches the service layer.
//
// It reports whether the caller's permission set contains the required token
// (exact match). On a miss it writes exactly one 403 response with the fixed
// forbidden message and returns false; the caller must return immediately
// without touching storage.
func allowed(w http.ResponseWriter, required models.Permission, set models.PermissionSet) bool {
	if !set.Has(required) {
		utils.WriteMessage(w, msgForbidden, http.StatusForbidden)
		return false
	}

	return true
}
