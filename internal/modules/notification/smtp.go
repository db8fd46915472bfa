package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"glamping/internal/domain"
	"glamping/internal/modules/rates"
)

// SMTPSender sends the booking-received mail over plain-auth SMTP
// (Gmail-style submission on port 587).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPSender) SendBookingReceived(_ context.Context, b *domain.Booking) error {
	if b.ClientEmail == "" {
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", b.ClientEmail)
	msg.WriteString("Subject: Reserva en Glamping Brumae - Recibida\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(bookingReceivedBody(b))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{b.ClientEmail}, []byte(msg.String()))
}

func bookingReceivedBody(b *domain.Booking) string {
	nights := len(rates.NightsBetween(b.CheckIn, b.CheckOut))

	decoText := "No"
	if b.Decoration {
		decoText = "Sí"
		if b.DecorationReason != "" {
			decoText = fmt.Sprintf("Sí (%s)", b.DecorationReason)
		}
	}

	return fmt.Sprintf(`Hola %s

Hemos recibido tu solicitud de reserva en Glamping Brumae.

Detalle de la reserva:
- Nombre: %s
- Teléfono: %s
- Fechas: %s al %s (%d noche(s))
- Personas: %d
- Decoración especial: %s
- Total estimado: %s
- Comentarios: %s

En breve te contactaremos para confirmar la disponibilidad final y compartir los datos para el anticipo (50%%).

Atentamente,
Glamping Brumae
`,
		b.ClientName,
		b.ClientName,
		b.ClientPhone,
		rates.FormatDate(b.CheckIn),
		rates.FormatDate(b.CheckOut),
		nights,
		b.Guests,
		decoText,
		FormatCOP(b.TotalPrice),
		b.Extras,
	)
}

// FormatCOP renders a whole-peso amount with dot thousand separators,
// e.g. 1020000 -> "$ 1.020.000".
func FormatCOP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var out strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteRune('.')
		}
		out.WriteRune(r)
	}

	if neg {
		return "-$ " + out.String()
	}
	return "$ " + out.String()
}
