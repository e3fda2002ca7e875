package mailer

import (
	"fmt"

	"clinique-core/internal/app/config"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer envoie les emails transactionnels de la clinique.
// Tous les envois sont best-effort : une erreur SMTP est journalisée,
// jamais remontée à l'appelant.
type Mailer struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

func NewMailer(cfg *config.Config, logger zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg.GetSMTP(),
		logger: logger,
	}
}

func (m *Mailer) send(to, subject, bodyHTML string) {
	if m.cfg.Host == "" {
		m.logger.Debug().Str("to", to).Str("subject", subject).
			Msg("SMTP non configuré, email ignoré")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", bodyHTML)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Warn().Err(err).Str("to", to).Str("subject", subject).
			Msg("échec envoi email")
	}
}

// SendAccountCredentials envoie les identifiants d'un compte patient nouvellement créé
func (m *Mailer) SendAccountCredentials(to, nom, prenom, email, password string) {
	body := fmt.Sprintf(`
		<h2>Bienvenue %s %s</h2>
		<p>Votre compte patient a été créé.</p>
		<p>Identifiant : <strong>%s</strong><br>
		Mot de passe temporaire : <strong>%s</strong></p>
		<p>Nous vous recommandons de changer ce mot de passe dès votre première connexion.</p>
	`, prenom, nom, email, password)

	m.send(to, "Votre compte patient", body)
}

// SendRendezVousConfirmation confirme un rendez-vous par email
func (m *Mailer) SendRendezVousConfirmation(to, nom, prenom, dateRdv, heureRdv, medecinNom string) {
	body := fmt.Sprintf(`
		<h2>Rendez-vous confirmé</h2>
		<p>Bonjour %s %s,</p>
		<p>Votre rendez-vous avec %s le <strong>%s</strong> à <strong>%s</strong> est confirmé.</p>
		<p>En cas d'empêchement, merci de prévenir le secrétariat.</p>
	`, prenom, nom, medecinNom, dateRdv, heureRdv)

	m.send(to, "Confirmation de rendez-vous", body)
}

// SendPasswordReset envoie un mot de passe temporaire après réinitialisation
func (m *Mailer) SendPasswordReset(to, nom, prenom, tempPassword string) {
	body := fmt.Sprintf(`
		<h2>Réinitialisation de mot de passe</h2>
		<p>Bonjour %s %s,</p>
		<p>Votre nouveau mot de passe temporaire : <strong>%s</strong></p>
		<p>Changez-le dès votre prochaine connexion.</p>
	`, prenom, nom, tempPassword)

	m.send(to, "Réinitialisation de votre mot de passe", body)
}
