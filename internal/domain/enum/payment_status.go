package enum

// PaymentStatus summarises the financial state captured at delivery.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

// PaymentStatusFor classifies an outstanding balance.
func PaymentStatusFor(balance int64) PaymentStatus {
	if balance <= 0 {
		return PaymentStatusPaid
	}
	return PaymentStatusPartial
}
