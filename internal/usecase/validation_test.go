package usecase

import (
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

func TestValidateOrderID(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"storefront token", "AB12CD34", true},
		{"lowercase", "ab12cd34", true},
		{"single char", "A", true},
		{"max length", strings.Repeat("A", 32), true},
		{"empty", "", false},
		{"too long", strings.Repeat("A", 33), false},
		{"whitespace", "AB 12", false},
		{"punctuation", "AB-12", false},
		{"path traversal", "../etc", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateOrderID(tc.id); got != tc.valid {
				t.Fatalf("ValidateOrderID(%q) = %v, want %v", tc.id, got, tc.valid)
			}
		})
	}
}

func pricedOrder() *model.Order {
	return &model.Order{
		ID:         "AB12CD34",
		RAMLabel:   "1 GB",
		RAMPrice:   28000,
		CPUCores:   1,
		CPUPrice:   5000,
		TotalPrice: 33000,
	}
}

func TestVerifyPricingAccepts(t *testing.T) {
	if err := VerifyPricing(pricedOrder()); err != nil {
		t.Fatalf("expected catalog-consistent order to pass: %v", err)
	}
}

func TestVerifyPricingWithIPv4(t *testing.T) {
	order := pricedOrder()
	order.HasIPv4 = true
	order.IPv4Price = 80000
	order.TotalPrice = 113000
	if err := VerifyPricing(order); err != nil {
		t.Fatalf("expected ipv4 order to pass: %v", err)
	}
}

func TestVerifyPricingWithBonusDomain(t *testing.T) {
	domain := "toko.my.id"
	order := &model.Order{
		ID:         "AB12CD34",
		Domain:     &domain,
		RAMLabel:   "2 GB",
		RAMPrice:   35000,
		CPUCores:   2,
		CPUPrice:   10000,
		TotalPrice: 45000,
	}
	if err := VerifyPricing(order); err != nil {
		t.Fatalf("expected bonus domain order to pass: %v", err)
	}
}

func TestVerifyPricingRejects(t *testing.T) {
	domain := "toko.my.id"
	cases := []struct {
		name   string
		mutate func(*model.Order)
		want   error
	}{
		{"unknown tier", func(o *model.Order) { o.RAMLabel = "64 GB" }, domainErrors.ErrUnknownTier},
		{"ram price lowered", func(o *model.Order) { o.RAMPrice = 1; o.TotalPrice = 6001 }, domainErrors.ErrPriceMismatch},
		{"cpu price wrong", func(o *model.Order) { o.CPUPrice = 1000; o.TotalPrice = 29000 }, domainErrors.ErrPriceMismatch},
		{"total understated", func(o *model.Order) { o.TotalPrice = 100 }, domainErrors.ErrPriceMismatch},
		{"ipv4 billed but absent", func(o *model.Order) { o.IPv4Price = 80000; o.TotalPrice = 113000 }, domainErrors.ErrPriceMismatch},
		{"ipv4 taken but free", func(o *model.Order) { o.HasIPv4 = true }, domainErrors.ErrPriceMismatch},
		{"zero cores", func(o *model.Order) { o.CPUCores = 0 }, domainErrors.ErrPriceMismatch},
		{"domain on small tier", func(o *model.Order) { o.Domain = &domain }, domainErrors.ErrDomainNotIncluded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := pricedOrder()
			tc.mutate(order)
			if err := VerifyPricing(order); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
