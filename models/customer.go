package models

// Customer is a customer account as listed for admins.
type Customer struct {
	ID         FlexID     `json:"id"`
	Name       string     `json:"customer_name"`
	Email      string     `json:"customer_email"`
	Phone      FlexString `json:"customer_phone"`
	Age        FlexString `json:"customer_age"`
	Gender     string     `json:"customer_gender"`
	Image      string     `json:"customer_image"`
	IsActive   *bool      `json:"is_active,omitempty"`
	DateJoined string     `json:"date_joined,omitempty"`
}

// Active treats a missing is_active flag as active.
func (c Customer) Active() bool {
	return c.IsActive == nil || *c.IsActive
}
