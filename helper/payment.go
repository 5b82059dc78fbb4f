package helper

import (
	"log"

	"park_manager/constants"
	"park_manager/model"

	"github.com/google/uuid"
)

// ProcessPayment simulates the gateway call. There is no banking
// integration; every payment settles immediately with a generated
// transaction reference for the logs and the receipt email.
func ProcessPayment(p *model.Payment) string {
	ref := uuid.New().String()
	p.Status = constants.PAYMENT_STATUS_SUCCESS
	log.Printf("payment %s settled for order %s (ref %s, amount %.2f)", p.PaymentID, p.OrderID, ref, p.Amount)
	return ref
}
