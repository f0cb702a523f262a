package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/clinsuite/endotrace/pkg/slogx"
)

// ErrNotConfigured is returned when the SMTP settings are absent. The alert
// endpoint treats this as a soft failure so an unconfigured deployment still
// serves everything else.
var ErrNotConfigured = errors.New("notifier not configured")

// NotifierConfig holds the SMTP settings for malfunction alerts. Host and
// Recipient empty means alerts are disabled.
type NotifierConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

func (c NotifierConfig) enabled() bool {
	return c.Host != "" && c.Recipient != ""
}

// Notifier sends email alerts when the broken share of the fleet crosses the
// alert threshold.
type Notifier struct {
	Config NotifierConfig
}

// AlertThresholdPercent is the broken-fleet share above which an alert fires.
const AlertThresholdPercent = 50.0

// SendMalfunctionAlert emails the configured recipient about an elevated
// breakdown rate. The percentage and raw counts come from the caller so the
// message matches exactly what the dashboard showed.
func (n *Notifier) SendMalfunctionAlert(ctx context.Context, percent float64, broken, total int) error {
	if !n.Config.enabled() {
		return ErrNotConfigured
	}

	msg := mail.NewMsg()
	if err := msg.From(n.Config.From); err != nil {
		return fmt.Errorf("notifier: invalid sender: %w", err)
	}
	if err := msg.To(n.Config.Recipient); err != nil {
		return fmt.Errorf("notifier: invalid recipient: %w", err)
	}
	msg.Subject("Alerte: taux de pannes endoscopes élevé")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Le taux de pannes du parc d'endoscopes a atteint %.1f%% (%d sur %d appareils en panne).\n\n"+
			"Veuillez consulter le tableau de bord pour le détail des appareils concernés.\n",
		percent, broken, total))

	opts := []mail.Option{
		mail.WithPort(n.Config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.Config.Username),
		mail.WithPassword(n.Config.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	client, err := mail.NewClient(n.Config.Host, opts...)
	if err != nil {
		return fmt.Errorf("notifier: client setup: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("notifier: send: %w", err)
	}

	slogx.FromContext(ctx).Info("malfunction alert sent",
		"recipient", n.Config.Recipient, "percent", percent, "broken", broken, "total", total)
	return nil
}
