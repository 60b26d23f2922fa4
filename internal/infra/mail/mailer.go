package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

// Mailer sends the booking confirmation over SMTP. Without an SMTP host
// configured it degrades to logging the would-be mail, so local setups
// never need a mail server.
type Mailer struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

func NewMailer(cfg config.MailConfig, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

func (m *Mailer) ReservationConfirmed(_ context.Context, view *queries.ReservationView) error {
	subject, body := ConfirmationMessage(view)

	if m.cfg.SMTPHost == "" {
		m.logger.Info("mail delivery not configured, logging confirmation instead",
			"to", view.Email,
			"subject", subject,
			"reservation_id", view.ID.String(),
		)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", headerSafe(m.cfg.FromName), m.cfg.Username)
	to := headerSafe(view.Email)

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + headerSafe(subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	return smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, []byte(msg))
}

// ConfirmationMessage renders the plain-text confirmation for a booked
// reservation.
func ConfirmationMessage(view *queries.ReservationView) (subject, body string) {
	subject = fmt.Sprintf("Reservation confirmed, room %d", view.RoomNumber)
	body = fmt.Sprintf(
		"Hi %s %s,\n\n"+
			"Your reservation is confirmed.\n\n"+
			"Room: %d (%s)\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n"+
			"Total: $%s\n\n"+
			"We look forward to your stay.\n",
		view.FirstName, view.LastName,
		view.RoomNumber, view.RoomType,
		view.CheckIn.Format(dateLayout),
		view.CheckOut.Format(dateLayout),
		view.Nights,
		formatCents(view.TotalCents),
	)
	return subject, body
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// Header values must not smuggle in extra lines.
func headerSafe(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
