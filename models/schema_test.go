package models

import (
	"errors"
	"testing"
)

func validOrder() Order {
	o := NewOrder()
	o.CustomerID = "665f1c2b9a1e4d3c2b1a0f9e"
	o.ServiceType = ServiceWashFold
	o.Items = []OrderItem{{Name: "Shirt", Quantity: 2, Price: 5}}
	o.PickupAddress = "12 Baker St"
	o.DeliveryAddress = "12 Baker St"
	return o
}

func TestDefaults(t *testing.T) {
	u := NewUser()
	if !u.IsActive || u.Role != RoleCustomer {
		t.Fatalf("unexpected user defaults: %+v", u)
	}
	if d := NewDriver(); !d.IsAvailable {
		t.Fatal("driver should default to available")
	}
	o := NewOrder()
	if o.Status != StatusPending || o.PaymentMethod != MethodCOD || o.Total != 0 || o.Items == nil {
		t.Fatalf("unexpected order defaults: %+v", o)
	}
	if p := NewPayment(); p.Status != PaymentPending {
		t.Fatalf("unexpected payment status default %q", p.Status)
	}
}

func TestValidateOrder(t *testing.T) {
	if err := Validate(validOrder()); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}

	tests := []struct {
		name  string
		mut   func(*Order)
		field string
	}{
		{"negative total", func(o *Order) { o.Total = -1 }, "total"},
		{"negative price", func(o *Order) { o.Items[0].Price = -0.5 }, "items[0].price"},
		{"zero quantity", func(o *Order) { o.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"unknown status", func(o *Order) { o.Status = "CANCELLED" }, "status"},
		{"unknown service", func(o *Order) { o.ServiceType = "steam" }, "service_type"},
		{"unknown payment method", func(o *Order) { o.PaymentMethod = "crypto" }, "payment_method"},
		{"missing customer", func(o *Order) { o.CustomerID = "" }, "customer_id"},
		{"missing pickup", func(o *Order) { o.PickupAddress = "" }, "pickup_address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mut(&o)
			err := Validate(o)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidatePayment(t *testing.T) {
	p := NewPayment()
	p.OrderID = "665f1c2b9a1e4d3c2b1a0f9e"
	p.Method = MethodCard
	p.Amount = 10
	if err := Validate(p); err != nil {
		t.Fatalf("valid payment rejected: %v", err)
	}

	p.Amount = -3
	var verr *ValidationError
	if err := Validate(p); !errors.As(err, &verr) || verr.Field != "amount" {
		t.Fatalf("negative amount: got %v", err)
	}

	p.Amount = 3
	p.Method = ""
	if err := Validate(p); !errors.As(err, &verr) || verr.Field != "method" {
		t.Fatalf("missing method: got %v", err)
	}
}

func TestValidateUser(t *testing.T) {
	u := NewUser()
	u.Name = "Ada"
	u.Phone = "+15550100"
	if err := Validate(u); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}
	bad := "not-an-email"
	u.Email = &bad
	if err := Validate(u); err == nil {
		t.Fatal("expected email rule to fail")
	}
	u.Email = nil
	u.Role = "restaurant"
	if err := Validate(u); err == nil {
		t.Fatal("expected role enum to fail")
	}
}

func TestValidateEnum(t *testing.T) {
	if err := ValidateEnum("status", StatusDelivered); err != nil {
		t.Fatalf("DELIVERED rejected: %v", err)
	}
	if err := ValidateEnum("status", OrderStatus("CANCELLED")); err == nil {
		t.Fatal("CANCELLED accepted")
	}
	if err := ValidateEnum("status", PaymentStatus("DELIVERED")); err == nil {
		t.Fatal("order status accepted as payment status")
	}
}
