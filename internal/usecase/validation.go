package usecase

import (
	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// ValidateOrderID checks the client-generated order token: non-empty
// alphanumeric ASCII, bounded length.
func ValidateOrderID(id string) bool {
	if id == "" || len(id) > model.MaxOrderIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// VerifyPricing recomputes every price component from the server-side
// catalog and rejects orders whose client-computed amounts disagree.
func VerifyPricing(order *model.Order) error {
	tier, ok := model.TierByLabel(order.RAMLabel)
	if !ok {
		return domainErrors.ErrUnknownTier
	}
	if order.CPUCores < 1 {
		return domainErrors.ErrPriceMismatch
	}
	if order.Domain != nil && *order.Domain != "" && !tier.BonusDomain {
		return domainErrors.ErrDomainNotIncluded
	}

	var ipv4Price int64
	if order.HasIPv4 {
		ipv4Price = model.IPv4NATPrice
	}
	cpuPrice := int64(order.CPUCores) * model.CPUCorePrice

	if order.RAMPrice != tier.Price ||
		order.CPUPrice != cpuPrice ||
		order.IPv4Price != ipv4Price ||
		order.TotalPrice != tier.Price+cpuPrice+ipv4Price {
		return domainErrors.ErrPriceMismatch
	}
	return nil
}
