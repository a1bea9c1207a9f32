package portfolio_test

import (
	"encoding/json"
	"testing"

	"sampada/internal/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_HolderOnEveryCard(t *testing.T) {
	resp := portfolio.Snapshot("Asha Rao")

	require.Len(t, resp.Cards, 8)
	for _, c := range resp.Cards {
		assert.Equal(t, "Asha Rao", c.HolderName, c.ID)
	}
	assert.Equal(t, "card-1", resp.Cards[0].ID)
	assert.Equal(t, int64(78000), resp.Cards[0].Outstanding)
}

func TestSnapshot_Shape(t *testing.T) {
	resp := portfolio.Snapshot(portfolio.UnknownHolder)

	require.Len(t, resp.Cards, 8)
	require.Len(t, resp.Utilization, 6)
	require.Len(t, resp.Timeline, 3)
	require.Len(t, resp.RecentActivity, 3)

	ids := make([]string, 0, len(resp.Cards))
	for _, c := range resp.Cards {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"card-1", "card-2", "card-3", "card-4", "card-5", "card-6", "card-7", "card-8"}, ids)

	assert.Equal(t, "Unknown", resp.Cards[3].HolderName)
	assert.Equal(t, int64(138450), resp.Summary.TotalOutstanding)
	assert.Equal(t, int64(400000), resp.Summary.TotalCreditLimit)
	assert.Equal(t, 34.6, resp.Summary.UtilizationPercent)
	assert.Equal(t, 3, resp.Summary.ActiveCards)

	// duplicated card-3 rows are part of the data set
	for _, u := range resp.Utilization[2:] {
		assert.Equal(t, "card-3", u.CardID)
		assert.Equal(t, "SBI Cashback •••• 7754", u.Label)
		assert.Equal(t, 14, u.Percent)
	}

	assert.Equal(t, []string{"high", "medium", "low"}, []string{
		resp.Timeline[0].Severity, resp.Timeline[1].Severity, resp.Timeline[2].Severity,
	})
	assert.Equal(t, "act-1", resp.RecentActivity[0].ID)
	assert.Equal(t, "Zomato", resp.RecentActivity[2].Merchant)
}

func TestSnapshot_Deterministic(t *testing.T) {
	a, err := json.Marshal(portfolio.Snapshot("Asha Rao"))
	require.NoError(t, err)
	b, err := json.Marshal(portfolio.Snapshot("Asha Rao"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSnapshot_ReturnsFreshValue(t *testing.T) {
	first := portfolio.Snapshot("Asha Rao")
	first.Cards[0].Outstanding = 0
	first.Utilization = nil

	second := portfolio.Snapshot("Asha Rao")
	assert.Equal(t, int64(78000), second.Cards[0].Outstanding)
	assert.Len(t, second.Utilization, 6)
}

func TestHolderName(t *testing.T) {
	assert.Equal(t, "Asha Rao", portfolio.HolderName("Asha Rao", true))
	assert.Equal(t, "Unknown", portfolio.HolderName("", false))
	assert.Equal(t, "", portfolio.HolderName("", true))
}
