// internal/bot/bot.go
package bot

import (
	"strings"
	"unicode/utf8"

	"sampada/internal/domain"
	"sampada/internal/portfolio"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const helpText = "💳 *Sampada credit cards*\n\n" +
	"Commands:\n" +
	"`/cards` — all cards with outstanding and limit\n" +
	"`/summary` — portfolio totals\n" +
	"`/due` — upcoming due dates\n" +
	"`/activity` — recent transactions"

var printer = message.NewPrinter(language.English)

// HolderFromNames joins a chat user's first and last name.
func HolderFromNames(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	return portfolio.HolderName(name, name != "")
}

// Reply renders the answer to a chat command for holder.
func Reply(holder, text string) string {
	cmd := strings.Fields(FixEncoding(text))
	if len(cmd) == 0 {
		return "Unknown command. Send /help"
	}

	// "/cards@SampadaBot" in group chats
	name, _, _ := strings.Cut(cmd[0], "@")

	snapshot := portfolio.Snapshot(holder)
	switch name {
	case "/start", "/help":
		return helpText
	case "/cards":
		return renderCards(snapshot)
	case "/summary":
		return renderSummary(snapshot.Summary)
	case "/due":
		return renderTimeline(snapshot.Timeline)
	case "/activity":
		return renderActivity(snapshot.RecentActivity)
	default:
		return "Unknown command. Send /help"
	}
}

func renderCards(resp domain.CreditCardsResponse) string {
	// the holder is the chat user's own name, so it may contain Markdown
	holder := tgbotapi.EscapeText(tgbotapi.ModeMarkdown, resp.Cards[0].HolderName)
	lines := []string{"💳 *Cards of " + holder + "*"}
	for _, c := range resp.Cards {
		lines = append(lines, printer.Sprintf("- %s %s •••• %s: %d / %d", c.BankName, c.CardVariant, c.Last4, c.Outstanding, c.CreditLimit))
	}
	return strings.Join(lines, "\n")
}

func renderSummary(s domain.Summary) string {
	return strings.Join([]string{
		"📊 *Summary*",
		printer.Sprintf("Outstanding: %d", s.TotalOutstanding),
		printer.Sprintf("Credit limit: %d", s.TotalCreditLimit),
		printer.Sprintf("Utilization: %.1f%%", s.UtilizationPercent),
		printer.Sprintf("Active cards: %d", s.ActiveCards),
		printer.Sprintf("Due in 7 days: %d", s.DueIn7Days),
		printer.Sprintf("Minimum due: %d", s.MinDue),
	}, "\n")
}

func renderTimeline(entries []domain.TimelineEntry) string {
	lines := []string{"📅 *Upcoming dues*"}
	for _, e := range entries {
		lines = append(lines, printer.Sprintf("- %s %s: %d (%s)", e.Date, e.Label, e.Amount, e.Severity))
	}
	return strings.Join(lines, "\n")
}

func renderActivity(entries []domain.RecentActivity) string {
	lines := []string{"🧾 *Recent activity*"}
	for _, a := range entries {
		lines = append(lines, printer.Sprintf("- %s %s %s: %d", a.Date, a.CardLabel, a.Merchant, a.Amount))
	}
	return strings.Join(lines, "\n")
}

// FixEncoding repairs Windows-1251 text that arrives as invalid UTF-8.
func FixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	return strings.ToValidUTF8(s, "")
}
