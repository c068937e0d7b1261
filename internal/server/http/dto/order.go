package dto

import (
	"time"

	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// CreateOrderRequest carries the full order payload submitted by the storefront.
type CreateOrderRequest struct {
	ID         string  `json:"id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email" binding:"required"`
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password" binding:"required"`
	Domain     *string `json:"domain"`
	RAMLabel   string  `json:"ram_label" binding:"required"`
	RAMPrice   int64   `json:"ram_price"`
	CPUCores   int     `json:"cpu_cores" binding:"required,min=1"`
	CPUPrice   int64   `json:"cpu_price"`
	HasIPv4    bool    `json:"has_ipv4"`
	IPv4Price  int64   `json:"ipv4_price"`
	TotalPrice int64   `json:"total_price"`
}

// ToModel converts the request into a domain order.
func (r *CreateOrderRequest) ToModel() *model.Order {
	return &model.Order{
		ID:         r.ID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Username:   r.Username,
		Password:   r.Password,
		Domain:     r.Domain,
		RAMLabel:   r.RAMLabel,
		RAMPrice:   r.RAMPrice,
		CPUCores:   r.CPUCores,
		CPUPrice:   r.CPUPrice,
		HasIPv4:    r.HasIPv4,
		IPv4Price:  r.IPv4Price,
		TotalPrice: r.TotalPrice,
	}
}

// ConfirmOrderRequest carries the addresses assigned by the administrator.
type ConfirmOrderRequest struct {
	IPv6     string `json:"ipv6"`
	IPv4Addr string `json:"ipv4_addr"`
}

// OrderResponse mirrors an order record on the wire, using the storefront's
// snake_case field names. Optional fields serialize as null while unset.
type OrderResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Password   string    `json:"password"`
	Domain     *string   `json:"domain"`
	RAMLabel   string    `json:"ram_label"`
	RAMPrice   int64     `json:"ram_price"`
	CPUCores   int       `json:"cpu_cores"`
	CPUPrice   int64     `json:"cpu_price"`
	HasIPv4    bool      `json:"has_ipv4"`
	IPv4Price  int64     `json:"ipv4_price"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	IPv6       *string   `json:"ipv6"`
	IPv4Addr   *string   `json:"ipv4_addr"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromModel builds the wire representation of an order.
func FromModel(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		Name:       o.Name,
		Phone:      o.Phone,
		Email:      o.Email,
		Username:   o.Username,
		Password:   o.Password,
		Domain:     o.Domain,
		RAMLabel:   o.RAMLabel,
		RAMPrice:   o.RAMPrice,
		CPUCores:   o.CPUCores,
		CPUPrice:   o.CPUPrice,
		HasIPv4:    o.HasIPv4,
		IPv4Price:  o.IPv4Price,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		IPv6:       o.IPv6,
		IPv4Addr:   o.IPv4Addr,
		CreatedAt:  o.CreatedAt,
	}
}
