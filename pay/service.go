package pay

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"medibay/carts"
	"medibay/checkout"
	"medibay/orders"
	"medibay/rdx"
	"medibay/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
)

const banksCacheKey = "payment:banks"

// Service runs the payment handoff: it presents the bank list, performs
// the one-way handoff for a draft, and archives the finished order.
type Service struct {
	Store   *carts.Store
	Gateway Gateway
	Archive orders.Archive
	rdx     *redis.Client
}

func NewService(store *carts.Store, gateway Gateway, archive orders.Archive) *Service {
	return &Service{
		Store:   store,
		Gateway: gateway,
		Archive: archive,
		rdx:     rdx.Conn,
	}
}

// ListMethods returns the supported bank list, cached in Redis.
func (p *Service) ListMethods(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	if cached, err := p.rdx.Get(ctx, banksCacheKey).Result(); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	payload, err := json.Marshal(utils.M{"methods": Banks()})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := p.rdx.Set(ctx, banksCacheKey, payload, 10*time.Minute).Err(); err != nil {
		log.Println("ListMethods cache set error:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// Pay hands the referenced draft off to the selected bank. The step is
// atomic: choosing a method and handing off happen together, and a second
// attempt for the same draft is rejected.
func (p *Service) Pay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	reference := ps.ByName("reference")

	var payload struct {
		Method checkout.PaymentMethod `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("Pay decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if !Supported(payload.Method) {
		http.Error(w, "Unknown payment method", http.StatusBadRequest)
		return
	}

	// per-reference lock so two devices on one account cannot race the
	// same draft through the handoff
	locked, err := p.acquireLock(ctx, reference, 30*time.Second)
	if err != nil {
		log.Println("Pay lock error:", err)
	}
	if err == nil && !locked {
		http.Error(w, "Handoff already in progress", http.StatusConflict)
		return
	}
	defer p.releaseLock(ctx, reference)

	sel, draft, err := p.Store.Session(userID).Pay(reference, payload.Method)
	if errors.Is(err, carts.ErrDraftNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, checkout.ErrAlreadyHandedOff) {
		http.Error(w, "Draft already handed off", http.StatusConflict)
		return
	}
	if err != nil {
		log.Println("Pay error:", err)
		http.Error(w, "Payment handoff failed", http.StatusInternalServerError)
		return
	}

	// one-way call; the gateway's outcome is out of band
	redirectURL, err := p.Gateway.Handoff(ctx, sel)
	if err != nil {
		log.Println("Pay gateway handoff error:", err)
	}

	// archive beside the core, best effort
	if err := p.Archive.Save(ctx, orders.FromHandoff(userID, draft, sel)); err != nil {
		log.Println("Pay archive error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"selection":   sel,
		"redirectUrl": redirectURL,
	})
}

func (p *Service) acquireLock(ctx context.Context, reference string, ttl time.Duration) (bool, error) {
	return p.rdx.SetNX(ctx, "handoff_lock:"+reference, "1", ttl).Result()
}

func (p *Service) releaseLock(ctx context.Context, reference string) {
	if err := p.rdx.Del(ctx, "handoff_lock:"+reference).Err(); err != nil {
		log.Printf("releaseLock: failed for %s, err=%v\n", reference, err)
	}
}
