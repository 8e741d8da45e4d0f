package models

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

var roles = []Role{RoleCustomer, RoleDriver, RoleAdmin}

func (r Role) IsValid() bool {
	for _, v := range roles {
		if r == v {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// User is a generic account. Phone is the login identifier.
type User struct {
	Name     string  `json:"name" bson:"name" validate:"required"`
	Phone    string  `json:"phone" bson:"phone" validate:"required"`
	Email    *string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Address  *string `json:"address,omitempty" bson:"address,omitempty"`
	Role     Role    `json:"role" bson:"role" validate:"enum"`
	IsActive bool    `json:"is_active" bson:"is_active"`
}

func NewUser() User {
	return User{Role: RoleCustomer, IsActive: true}
}

func (User) Collection() string { return CollectionUser }
