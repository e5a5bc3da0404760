package receipts

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"medibay/carts"
	"medibay/checkout"
	"medibay/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

var hmacSecret = receiptSecret()

func receiptSecret() string {
	if s := os.Getenv("RECEIPT_SECRET"); s != "" {
		return s
	}
	return "your-very-secret-key" // dev fallback only
}

// qrPayload returns the signed payload embedded in the receipt QR code:
// reference|amount|signature. Support staff scan it to look an order up
// without trusting the printed text.
func qrPayload(draft *checkout.OrderDraft) string {
	data := fmt.Sprintf("%s|%d", draft.Reference, draft.Total)
	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// rupees renders cents for presentation. This is the only place amounts
// leave their integer representation.
func rupees(cents int64) string {
	return fmt.Sprintf("Rs. %d.%02d", cents/100, cents%100)
}

type Handler struct {
	Store *carts.Store
}

func NewHandler(store *carts.Store) *Handler {
	return &Handler{Store: store}
}

// PrintReceipt renders a PDF receipt for a draft, with the order reference
// embedded as a QR code.
func (h *Handler) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reference := ps.ByName("reference")
	draft, err := h.Store.Session(userID).Draft(reference)
	if errors.Is(err, carts.ErrDraftNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}

	qrPNG, err := qrcode.Encode(qrPayload(draft), qrcode.Medium, 256)
	if err != nil {
		log.Println("PrintReceipt QR error:", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", draft.Reference))
	pdf.Ln(8)
	if draft.Buyer.Name != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Name: %s", draft.Buyer.Name))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", draft.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	for _, line := range draft.Lines {
		pdf.Cell(0, 8, fmt.Sprintf("%s  x%d  %s", line.Item.Name, line.Quantity, rupees(line.LineTotal())))
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %s", rupees(draft.Total)))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PrintReceipt PDF error:", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+reference+".pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
