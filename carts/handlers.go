package carts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"medibay/catalog"
	"medibay/checkout"
	"medibay/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store   *Store
	Catalog catalog.Provider
}

func NewHandler(store *Store, provider catalog.Provider) *Handler {
	return &Handler{Store: store, Catalog: provider}
}

// AddItem resolves the item against the catalog provider and puts it in
// the caller's cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ItemID == "" {
		http.Error(w, "itemId is required", http.StatusBadRequest)
		return
	}

	item, err := h.Catalog.GetItem(ctx, payload.ItemID)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("AddItem catalog error:", err)
		http.Error(w, "Could not resolve item", http.StatusInternalServerError)
		return
	}

	if err := h.Store.Session(userID).AddItem(item, payload.Quantity); err != nil {
		if errors.Is(err, checkout.ErrInvalidItem) {
			http.Error(w, "Invalid catalog item", http.StatusBadRequest)
			return
		}
		log.Println("AddItem error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// UpdateItem applies a signed quantity delta to one cart line. Dropping to
// zero removes the line.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	err := h.Store.Session(userID).ChangeQuantity(ps.ByName("itemId"), payload.Delta)
	if errors.Is(err, checkout.ErrLineNotFound) {
		http.Error(w, "Item not in cart", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("UpdateItem error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// GetCart returns the caller's lines and running total.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lines, total := h.Store.Session(userID).Snapshot()
	if lines == nil {
		lines = []checkout.CartLine{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"lines":      lines,
		"totalCents": total,
	})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	h.Store.Session(userID).Clear()
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Checkout freezes the cart into an order draft. An empty cart blocks the
// transition instead of producing a zero-total order.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// buyer contact is stored as provided; no format checks
	var buyer checkout.BuyerContact
	if err := json.NewDecoder(r.Body).Decode(&buyer); err != nil {
		log.Println("Checkout decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	draft, err := h.Store.Session(userID).Checkout(buyer)
	if errors.Is(err, checkout.ErrEmptyCart) {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Println("Checkout error:", err)
		http.Error(w, "Checkout failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, draft)
}

// GetDraft returns a previously built draft by reference.
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	draft, err := h.Store.Session(userID).Draft(ps.ByName("reference"))
	if errors.Is(err, ErrDraftNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, draft)
}

// Abandon discards a draft before payment; the cart is left untouched.
func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	err := h.Store.Session(userID).Abandon(ps.ByName("reference"))
	if errors.Is(err, ErrDraftNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, checkout.ErrAlreadyHandedOff) {
		http.Error(w, "Draft already handed off", http.StatusConflict)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})
}
