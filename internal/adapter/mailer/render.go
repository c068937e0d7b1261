package mailer

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

const receiptSubject = "RFFNET - Payment instructions for order %s"

const activationSubject = "RFFNET - Your VPS is active (order %s)"

var receiptTemplate = template.Must(template.New("receipt").Parse(`Hi {{.Order.Name}},

Thank you for your order! Here is your receipt.

Order ID : {{.Order.ID}}
Email    : {{.Order.Email}}

RAM {{.Order.RAMLabel}}      : {{.RAMPrice}}
CPU {{.Order.CPUCores}} Core : {{.CPUPrice}}
{{- if .Order.HasIPv4}}
IPv4 Add-on  : {{.IPv4Price}}
{{- end}}
{{- if .Order.Domain}}
Bonus Domain : {{.Order.Domain}} (free)
{{- end}}
-----------------------------
TOTAL        : {{.TotalPrice}}

Please transfer the total amount and keep this order ID for reference.
Your VPS will be activated once payment is verified by our team.

RFFNET - rffnet.my.id
`))

var activationTemplate = template.Must(template.New("activation").Parse(`Hi {{.Order.Name}},

Your VPS is now active. Connection details below.

Order ID : {{.Order.ID}}
RAM      : {{.Order.RAMLabel}}
CPU      : {{.Order.CPUCores}} Core
IPv6     : {{.IPv6}}
{{- if .IPv4Addr}}
IPv4     : {{.IPv4Addr}}
{{- end}}
{{- if .Order.Domain}}
Domain   : {{.Order.Domain}}
{{- end}}

Username : {{.Order.Username}}
Password : {{.Order.Password}}

Valid until {{.ExpiresAt}}. Renew before the expiry date to keep your data.

RFFNET - rffnet.my.id
`))

type templateData struct {
	Order      *model.Order
	RAMPrice   string
	CPUPrice   string
	IPv4Price  string
	TotalPrice string
	IPv6       string
	IPv4Addr   string
	ExpiresAt  string
}

// Render produces the notification matching the order's lifecycle state:
// payment instructions while PENDING, an activation notice once CONFIRMED.
func Render(order *model.Order) (*Message, error) {
	data := templateData{
		Order:      order,
		RAMPrice:   FormatRupiah(order.RAMPrice),
		CPUPrice:   FormatRupiah(order.CPUPrice),
		IPv4Price:  FormatRupiah(order.IPv4Price),
		TotalPrice: FormatRupiah(order.TotalPrice),
		ExpiresAt:  order.ExpiresAt().Format("02 Jan 2006"),
	}
	if order.IPv6 != nil {
		data.IPv6 = *order.IPv6
	}
	if order.IPv4Addr != nil {
		data.IPv4Addr = *order.IPv4Addr
	}

	var (
		tmpl    *template.Template
		subject string
	)
	switch order.Status {
	case model.OrderStatusConfirmed:
		tmpl = activationTemplate
		subject = fmt.Sprintf(activationSubject, order.ID)
	default:
		tmpl = receiptTemplate
		subject = fmt.Sprintf(receiptSubject, order.ID)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	return &Message{To: order.Email, Subject: subject, Body: body.String()}, nil
}

// FormatRupiah renders an amount the way the storefront shows prices,
// with dot thousands separators: 33000 -> "Rp 33.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out bytes.Buffer
	if negative {
		out.WriteByte('-')
	}
	out.WriteString("Rp ")
	lead := len(digits) % 3
	if lead > 0 {
		out.WriteString(digits[:lead])
		if len(digits) > lead {
			out.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		out.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			out.WriteByte('.')
		}
	}
	return out.String()
}
