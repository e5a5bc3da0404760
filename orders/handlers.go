package orders

import (
	"context"
	"log"
	"net/http"
	"time"

	"medibay/models"
	"medibay/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Archive Archive
}

func NewHandler(a Archive) *Handler {
	return &Handler{Archive: a}
}

// ListOrders returns the caller's archived orders, newest first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Archive.ListByUser(ctx, userID)
	if err != nil {
		log.Println("ListOrders error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orders": list})
}
