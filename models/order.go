package models

// ServiceType is the laundry service requested for an order
type ServiceType string

const (
	ServiceWashFold ServiceType = "wash_fold"
	ServiceDryClean ServiceType = "dry_clean"
	ServiceIronOnly ServiceType = "iron_only"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceWashFold, ServiceDryClean, ServiceIronOnly:
		return true
	}
	return false
}

func (s ServiceType) String() string { return string(s) }

// OrderStatus represents all possible states of a laundry order, in forward order
type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusDriverAssigned OrderStatus = "DRIVER_ASSIGNED"
	StatusPickedUp       OrderStatus = "PICKED_UP"
	StatusInWash         OrderStatus = "IN_WASH"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
)

// OrderStatuses lists every order status in nominal forward progression.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusDriverAssigned,
	StatusPickedUp,
	StatusInWash,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s OrderStatus) String() string { return string(s) }

// PaymentMethod is shared by orders and payments
type PaymentMethod string

const (
	MethodCOD  PaymentMethod = "cod"
	MethodCard PaymentMethod = "card"
)

func (m PaymentMethod) IsValid() bool {
	return m == MethodCOD || m == MethodCard
}

func (m PaymentMethod) String() string { return string(m) }

// OrderItem is embedded in an order and has no identity of its own
type OrderItem struct {
	Name     string  `json:"name" bson:"name" validate:"required"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
}

type Order struct {
	CustomerID      string        `json:"customer_id" bson:"customer_id" validate:"required"`
	DriverID        *string       `json:"driver_id,omitempty" bson:"driver_id,omitempty"`
	ServiceType     ServiceType   `json:"service_type" bson:"service_type" validate:"enum"`
	Items           []OrderItem   `json:"items" bson:"items" validate:"required,dive"`
	PickupAddress   string        `json:"pickup_address" bson:"pickup_address" validate:"required"`
	DeliveryAddress string        `json:"delivery_address" bson:"delivery_address" validate:"required"`
	ScheduledAt     *DateTime     `json:"scheduled_at,omitempty" bson:"scheduled_at,omitempty"`
	Notes           *string       `json:"notes,omitempty" bson:"notes,omitempty"`
	Status          OrderStatus   `json:"status" bson:"status" validate:"enum"`
	PaymentMethod   PaymentMethod `json:"payment_method" bson:"payment_method" validate:"enum"`
	Total           float64       `json:"total" bson:"total" validate:"gte=0"`
}

func NewOrder() Order {
	return Order{
		Items:         []OrderItem{},
		Status:        StatusPending,
		PaymentMethod: MethodCOD,
	}
}

func (Order) Collection() string { return CollectionOrder }

// StatusUpdate is the payload of an order status change. It reuses
// OrderStatus so the update path accepts exactly the record's vocabulary.
type StatusUpdate struct {
	Status OrderStatus `json:"status" binding:"required"`
}
