package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

func confirmedOrder() *model.Order {
	ipv6 := "2001:db8::1"
	ipv4 := "203.0.113.9"
	domain := "toko.my.id"
	return &model.Order{
		ID:         "AB12CD34",
		Name:       "Budi",
		Email:      "budi@example.com",
		Username:   "budi",
		Password:   "rahasia",
		Domain:     &domain,
		RAMLabel:   "2 GB",
		RAMPrice:   35000,
		CPUCores:   2,
		CPUPrice:   10000,
		HasIPv4:    true,
		IPv4Price:  80000,
		TotalPrice: 125000,
		Status:     model.OrderStatusConfirmed,
		IPv6:       &ipv6,
		IPv4Addr:   &ipv4,
		CreatedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{5000, "Rp 5.000"},
		{33000, "Rp 33.000"},
		{217000, "Rp 217.000"},
		{1250000, "Rp 1.250.000"},
		{-33000, "-Rp 33.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRenderPendingReceipt(t *testing.T) {
	order := &model.Order{
		ID:         "AB12CD34",
		Name:       "Budi",
		Email:      "budi@example.com",
		RAMLabel:   "1 GB",
		RAMPrice:   28000,
		CPUCores:   1,
		CPUPrice:   5000,
		TotalPrice: 33000,
		Status:     model.OrderStatusPending,
	}

	msg, err := Render(order)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "budi@example.com" {
		t.Fatalf("unexpected recipient: %q", msg.To)
	}
	if !strings.Contains(msg.Subject, "Payment instructions") {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	for _, want := range []string{"Budi", "budi@example.com", "Rp 28.000", "Rp 5.000", "Rp 33.000"} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("receipt body missing %q:\n%s", want, msg.Body)
		}
	}
	if strings.Contains(msg.Body, "IPv4 Add-on") {
		t.Fatal("receipt must not itemize an add-on that was not purchased")
	}
	if strings.Contains(msg.Body, "Username") {
		t.Fatal("receipt must not leak credentials")
	}
}

func TestRenderActivationNotice(t *testing.T) {
	order := confirmedOrder()

	msg, err := Render(order)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(msg.Subject, "active") {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	for _, want := range []string{
		"2 GB", "2 Core",
		"2001:db8::1", "203.0.113.9",
		"toko.my.id",
		"budi", "rahasia",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("activation body missing %q:\n%s", want, msg.Body)
		}
	}

	// Expiry is created_at + 30 days.
	if !strings.Contains(msg.Body, "31 Mar 2024") {
		t.Fatalf("activation body missing expiry date:\n%s", msg.Body)
	}
}

func TestRenderActivationWithoutIPv4(t *testing.T) {
	order := confirmedOrder()
	order.HasIPv4 = false
	order.IPv4Addr = nil

	msg, err := Render(order)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(msg.Body, "IPv4") {
		t.Fatalf("activation body must omit ipv4 when none was assigned:\n%s", msg.Body)
	}
}
