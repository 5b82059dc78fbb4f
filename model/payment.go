package model

import "fmt"

type Payment struct {
	PaymentID string  `json:"paymentID"`
	OrderID   string  `json:"orderID"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

type Receipt struct {
	ReceiptID  string `json:"receiptID"`
	OrderID    string `json:"orderID"`
	PaymentID  string `json:"paymentID"`
	DateIssued string `json:"dateIssued"`
}

// Summary is the human-readable receipt line shown on order detail pages
// and in the confirmation email.
func (r Receipt) Summary() string {
	return fmt.Sprintf("Receipt %s for Order %s, Payment %s", r.ReceiptID, r.OrderID, r.PaymentID)
}
