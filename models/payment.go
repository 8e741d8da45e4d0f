package models

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	}
	return false
}

func (s PaymentStatus) String() string { return string(s) }

type Payment struct {
	OrderID       string        `json:"order_id" bson:"order_id" validate:"required"`
	Amount        float64       `json:"amount" bson:"amount" validate:"gte=0"`
	Method        PaymentMethod `json:"method" bson:"method" validate:"enum"`
	Status        PaymentStatus `json:"status" bson:"status" validate:"enum"`
	TransactionID *string       `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
}

func NewPayment() Payment {
	return Payment{Status: PaymentPending}
}

func (Payment) Collection() string { return CollectionPayment }

type PaymentStatusUpdate struct {
	Status PaymentStatus `json:"status" binding:"required"`
}
