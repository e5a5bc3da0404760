package pay

import "medibay/checkout"

// Bank is one entry of the supported payment-method set presented at
// checkout. The set is fixed at build time; selecting a bank only routes
// the buyer onward, no funds move through this service.
type Bank struct {
	Code checkout.PaymentMethod `json:"code"`
	Name string                 `json:"name"`
}

var banks = []Bank{
	{Code: "hbl", Name: "HBL"},
	{Code: "ubl", Name: "UBL"},
	{Code: "mcb", Name: "MCB"},
	{Code: "meezan", Name: "Meezan Bank"},
	{Code: "alfalah", Name: "Bank Alfalah"},
	{Code: "standard", Name: "Standard Chartered"},
}

// Banks returns the supported payment methods in display order.
func Banks() []Bank {
	out := make([]Bank, len(banks))
	copy(out, banks)
	return out
}

// Supported reports whether a method belongs to the bank list.
func Supported(method checkout.PaymentMethod) bool {
	for _, b := range banks {
		if b.Code == method {
			return true
		}
	}
	return false
}
