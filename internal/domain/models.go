// internal/domain/models.go

// Package domain holds the credit-card portfolio payload.
// Money amounts are in minor currency units.
package domain

// Summary is the portfolio totals block.
type Summary struct {
	TotalOutstanding   int64   `json:"totalOutstanding"`
	TotalCreditLimit   int64   `json:"totalCreditLimit"`
	UtilizationPercent float64 `json:"utilizationPercent"`
	ActiveCards        int     `json:"activeCards"`
	DueIn7Days         int64   `json:"dueIn7Days"`
	MinDue             int64   `json:"minDue"`
}

// Card is one credit card as shown to its holder.
type Card struct {
	ID          string `json:"id"`
	BankName    string `json:"bankName"`
	CardVariant string `json:"cardVariant"`
	Network     string `json:"network"`
	Last4       string `json:"last4"`
	HolderName  string `json:"holderName"`
	Outstanding int64  `json:"outstanding"`
	CreditLimit int64  `json:"creditLimit"`
	DueDate     string `json:"dueDate"`
	BillingDate string `json:"billingDate"`
	ThemeID     string `json:"themeId"`
}

// UtilizationEntry is the share of the limit in use on one card.
type UtilizationEntry struct {
	CardID  string `json:"cardId"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// TimelineEntry is an upcoming payment due date.
// Severity is "high", "medium" or "low"; it is not enforced.
type TimelineEntry struct {
	CardID   string `json:"cardId"`
	Date     string `json:"date"`
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Severity string `json:"severity"`
}

// RecentActivity is one recent card transaction.
type RecentActivity struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	CardLabel string `json:"cardLabel"`
	Merchant  string `json:"merchant"`
	Amount    int64  `json:"amount"`
}

// CreditCardsResponse is the body of GET /api/v1/credit-cards.
type CreditCardsResponse struct {
	Summary        Summary            `json:"summary"`
	Cards          []Card             `json:"cards"`
	Utilization    []UtilizationEntry `json:"utilization"`
	Timeline       []TimelineEntry    `json:"timeline"`
	RecentActivity []RecentActivity   `json:"recentActivity"`
}
