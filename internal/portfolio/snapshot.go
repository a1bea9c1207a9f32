// internal/portfolio/snapshot.go
package portfolio

import "sampada/internal/domain"

// UnknownHolder is reported when the caller is anonymous.
const UnknownHolder = "Unknown"

// HolderName returns name when the caller identity is present, UnknownHolder otherwise.
// A present but empty name is kept as is.
func HolderName(name string, ok bool) string {
	if !ok {
		return UnknownHolder
	}
	return name
}

// Snapshot builds the credit-card portfolio shown to holder.
// Every call returns a fresh value, so callers may modify it freely.
//
// The summary is a fixed literal and is not derived from the cards.
func Snapshot(holder string) domain.CreditCardsResponse {
	return domain.CreditCardsResponse{
		Summary:        summary(),
		Cards:          cards(holder),
		Utilization:    utilization(),
		Timeline:       timeline(),
		RecentActivity: recentActivity(),
	}
}

func summary() domain.Summary {
	return domain.Summary{
		TotalOutstanding:   138450,
		TotalCreditLimit:   400000,
		UtilizationPercent: 34.6,
		ActiveCards:        3,
		DueIn7Days:         48200,
		MinDue:             6920,
	}
}

// The holder is applied to the whole list in one place; cards carry no owner of their own yet.
func cards(holder string) []domain.Card {
	list := []domain.Card{
		{ID: "card-1", BankName: "HDFC Bank", CardVariant: "Regalia", Network: "visa", Last4: "4821", Outstanding: 78000, CreditLimit: 100000, DueDate: "2026-02-18", BillingDate: "2026-02-05", ThemeID: "slate-red"},
		{ID: "card-2", BankName: "ICICI Bank", CardVariant: "Amazon Pay", Network: "visa", Last4: "1960", Outstanding: 42000, CreditLimit: 100000, DueDate: "2026-02-22", BillingDate: "2026-02-10", ThemeID: "slate-blue"},
		{ID: "card-3", BankName: "SBI Card", CardVariant: "Cashback", Network: "rupay", Last4: "7754", Outstanding: 18450, CreditLimit: 100000, DueDate: "2026-03-02", BillingDate: "2026-02-17", ThemeID: "zinc-emerald"},
		{ID: "card-4", BankName: "Axis Bank", CardVariant: "Magnus", Network: "visa", Last4: "3391", Outstanding: 56300, CreditLimit: 250000, DueDate: "2026-02-24", BillingDate: "2026-02-11", ThemeID: "indigo-violet"},
		{ID: "card-5", BankName: "Kotak", CardVariant: "Zen", Network: "mastercard", Last4: "6184", Outstanding: 22100, CreditLimit: 90000, DueDate: "2026-02-20", BillingDate: "2026-02-07", ThemeID: "cyan-sky"},
		{ID: "card-6", BankName: "American Express", CardVariant: "Gold", Network: "amex", Last4: "0917", Outstanding: 30900, CreditLimit: 150000, DueDate: "2026-02-27", BillingDate: "2026-02-14", ThemeID: "amber-orange"},
		{ID: "card-7", BankName: "IndusInd", CardVariant: "Legend", Network: "mastercard", Last4: "5508", Outstanding: 12750, CreditLimit: 80000, DueDate: "2026-02-19", BillingDate: "2026-02-06", ThemeID: "lime-emerald"},
		{ID: "card-8", BankName: "YES Bank", CardVariant: "Prosperity", Network: "rupay", Last4: "7305", Outstanding: 40200, CreditLimit: 120000, DueDate: "2026-02-26", BillingDate: "2026-02-13", ThemeID: "neutral-gray"},
	}
	for i := range list {
		list[i].HolderName = holder
	}
	return list
}

// card-3 is listed four times; kept until product confirms the intended rows.
func utilization() []domain.UtilizationEntry {
	return []domain.UtilizationEntry{
		{CardID: "card-1", Label: "HDFC Regalia •••• 4821", Percent: 78},
		{CardID: "card-2", Label: "ICICI Amazon Pay •••• 1960", Percent: 42},
		{CardID: "card-3", Label: "SBI Cashback •••• 7754", Percent: 14},
		{CardID: "card-3", Label: "SBI Cashback •••• 7754", Percent: 14},
		{CardID: "card-3", Label: "SBI Cashback •••• 7754", Percent: 14},
		{CardID: "card-3", Label: "SBI Cashback •••• 7754", Percent: 14},
	}
}

func timeline() []domain.TimelineEntry {
	return []domain.TimelineEntry{
		{CardID: "card-1", Date: "18/02/2026", Label: "HDFC Regalia due", Amount: 32500, Severity: "high"},
		{CardID: "card-2", Date: "22/02/2026", Label: "ICICI Amazon Pay due", Amount: 15700, Severity: "medium"},
		{CardID: "card-3", Date: "02/03/2026", Label: "SBI Cashback due", Amount: 8900, Severity: "low"},
	}
}

func recentActivity() []domain.RecentActivity {
	return []domain.RecentActivity{
		{ID: "act-1", Date: "2026-02-14", CardLabel: "HDFC •••• 4821", Merchant: "Air India", Amount: 21300},
		{ID: "act-2", Date: "2026-02-13", CardLabel: "ICICI •••• 1960", Merchant: "Amazon India", Amount: 8940},
		{ID: "act-3", Date: "2026-02-12", CardLabel: "SBI •••• 7754", Merchant: "Zomato", Amount: 1260},
	}
}
