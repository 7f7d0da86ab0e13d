package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gopkg.in/gomail.v2"

	"calzone/internal/models"
	"calzone/internal/utils"
)

// Notifier announces newly created deals to the sales channel. Everything
// here is best-effort: a failed notification is logged, never surfaced to
// the API caller.
type Notifier struct {
	dialer     *gomail.Dialer
	from       string
	recipients []string

	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string, recipients []string) *Notifier {
	n := &Notifier{from: fromEmail, recipients: recipients}
	if smtpHost != "" {
		n.dialer = gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	}
	return n
}

// WithTelegram attaches a Telegram bot. A bad token disables the channel
// rather than failing startup.
func (n *Notifier) WithTelegram(botToken string, chatID int64) *Notifier {
	if botToken == "" || chatID == 0 {
		return n
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		utils.Logger.Warn().Err(err).Msg("telegram bot init failed, channel disabled")
		return n
	}
	n.bot = bot
	n.chatID = chatID
	return n
}

func (n *Notifier) DealCreated(deal models.UnifiedDeal) {
	n.sendEmail(deal)
	n.sendTelegram(deal)
}

func (n *Notifier) sendEmail(deal models.UnifiedDeal) {
	if n.dialer == nil || len(n.recipients) == 0 {
		return
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.recipients...)
	m.SetHeader("Subject", fmt.Sprintf("New deal: %s", deal.Name))

	body := fmt.Sprintf(`
		<h3>A new deal entered the pipeline</h3>
		<p><strong>%s</strong> — %s</p>
		<p>Amount: %.2f<br>Stage: %s<br>Owner: %s</p>
	`, deal.Name, deal.Customer, deal.Amount.Float64(), deal.Stage, deal.Owner)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		utils.Logger.Warn().Err(err).Str("deal", deal.ID).Msg("deal email notification failed")
	}
}

func (n *Notifier) sendTelegram(deal models.UnifiedDeal) {
	if n.bot == nil {
		return
	}
	text := fmt.Sprintf("New deal: %s\nCustomer: %s\nAmount: %.2f\nStage: %s",
		deal.Name, deal.Customer, deal.Amount.Float64(), deal.Stage)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		utils.Logger.Warn().Err(err).Str("deal", deal.ID).Msg("deal telegram notification failed")
	}
}
