package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)

// Order describes a VPS purchase placed by a customer. The id is generated
// client-side as a short alphanumeric token. Prices are stored in Rupiah.
type Order struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	Username   string
	Password   string
	Domain     *string
	RAMLabel   string
	RAMPrice   int64
	CPUCores   int
	CPUPrice   int64
	HasIPv4    bool
	IPv4Price  int64
	TotalPrice int64
	Status     OrderStatus
	IPv6       *string
	IPv4Addr   *string
	CreatedAt  time.Time
}

// ValidityPeriod is how long a confirmed VPS stays active after the order
// was placed. Shown to the customer as the expiry date.
const ValidityPeriod = 30 * 24 * time.Hour

// ExpiresAt returns the end of the order's validity window.
func (o *Order) ExpiresAt() time.Time {
	return o.CreatedAt.Add(ValidityPeriod)
}
