package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
)

// NewNotifier returns the SMTP notifier when mail is enabled and a no-op
// otherwise. Callers treat delivery as best-effort either way.
func NewNotifier(cfg config.SMTPConfig, appCfg config.AppConfig, pool *pgxpool.Pool) commands.Notifier {
	if !cfg.Enabled {
		return NoopNotifier{}
	}
	return &SMTPNotifier{cfg: cfg, appCfg: appCfg, pool: pool}
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, n commands.Notification) error {
	slog.Debug("mail disabled, dropping notification", "kind", n.Kind, "requestor", n.Requestor)
	return nil
}

type SMTPNotifier struct {
	cfg    config.SMTPConfig
	appCfg config.AppConfig
	pool   *pgxpool.Pool
}

func (s *SMTPNotifier) Notify(ctx context.Context, n commands.Notification) error {
	recipients, err := s.recipients(ctx, n)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	loginURL := n.LoginURL
	if loginURL == "" {
		loginURL = s.appCfg.LoginURL
	}
	subject, body := compose(n, loginURL)

	msg := strings.Builder{}
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + strings.Join(recipients, ",") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := s.cfg.Host + ":" + s.cfg.Port
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, recipients, []byte(msg.String()))
}

// recipients resolves the active members of the requesting team plus the
// requestor and approver addresses.
func (s *SMTPNotifier) recipients(ctx context.Context, n commands.Notification) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT email FROM users
		WHERE tenant_id = $1
		  AND is_active
		  AND (team_id = $2 OR username = $3 OR username = $4)`,
		n.TenantID, n.TeamID, n.Requestor, n.Approver,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("resolve notification recipients", err)
	}
	defer rows.Close()

	var recipients []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, infra.WrapRepoErr("scan recipient row", err)
		}
		recipients = append(recipients, email)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate recipient rows", err)
	}
	return recipients, nil
}

func compose(n commands.Notification, loginURL string) (subject, body string) {
	switch n.Kind {
	case commands.NotifyOffsetResetRequested:
		subject = "New Operational Request"
		body = fmt.Sprintf("A consumer offset reset on %s has been requested by %s.\n%s", n.Topic, n.Requestor, n.Body)
	case commands.NotifyOffsetResetApproved:
		subject = "Operational Request Approved"
		body = fmt.Sprintf("The consumer offset reset on %s requested by %s has been approved by %s.%s", n.Topic, n.Requestor, n.Approver, n.Body)
	case commands.NotifyOffsetResetDeclined:
		subject = "Operational Request Declined"
		body = fmt.Sprintf("The consumer offset reset on %s requested by %s has been declined by %s.\n%s", n.Topic, n.Requestor, n.Approver, n.Body)
	case commands.NotifyConnectorRequested:
		subject = "New Connector Request"
		body = fmt.Sprintf("A connector %s has been requested by %s.\n%s", n.Topic, n.Requestor, n.Body)
	case commands.NotifyConnectorApproved:
		subject = "Connector Request Approved"
		body = fmt.Sprintf("The connector %s requested by %s has been approved by %s.", n.Topic, n.Requestor, n.Approver)
	case commands.NotifyConnectorDeclined:
		subject = "Connector Request Declined"
		body = fmt.Sprintf("The connector %s requested by %s has been declined by %s.\n%s", n.Topic, n.Requestor, n.Approver, n.Body)
	default:
		subject = "Notification"
		body = n.Body
	}
	return subject, body + "\n\n" + loginURL
}
