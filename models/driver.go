package models

// Driver profile, kept apart from the user account it references.
type Driver struct {
	UserID       string  `json:"user_id" bson:"user_id" validate:"required"`
	VehicleType  *string `json:"vehicle_type,omitempty" bson:"vehicle_type,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty" bson:"license_plate,omitempty"`
	IsAvailable  bool    `json:"is_available" bson:"is_available"`
}

func NewDriver() Driver {
	return Driver{IsAvailable: true}
}

func (Driver) Collection() string { return CollectionDriver }
