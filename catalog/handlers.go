package catalog

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"medibay/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Provider Provider
}

func NewHandler(p Provider) *Handler {
	return &Handler{Provider: p}
}

// ListItems returns the full catalog. The provider produces a finite,
// non-lazy list; there is no pagination.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := h.Provider.ListItems(ctx)
	if err != nil {
		log.Println("ListItems error:", err)
		http.Error(w, "Could not retrieve catalog", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	item, err := h.Provider.GetItem(ctx, ps.ByName("itemId"))
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("GetItem error:", err)
		http.Error(w, "Could not retrieve item", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}
