package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/target/leave-ui/internal/domain/model"
)

func d(y int, m time.Month, day int) model.Date { return model.NewDate(y, m, day) }

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end model.Date
		want       int
	}{
		{name: "same day", start: d(2024, 3, 1), end: d(2024, 3, 1), want: 1},
		{name: "three days", start: d(2024, 3, 1), end: d(2024, 3, 3), want: 3},
		{name: "across month end", start: d(2024, 2, 28), end: d(2024, 3, 1), want: 3},
		{name: "reversed is symmetric", start: d(2024, 3, 3), end: d(2024, 3, 1), want: 3},
		{name: "missing end", start: d(2024, 3, 1), want: 0},
		{name: "missing start", end: d(2024, 3, 1), want: 0},
		{name: "both missing", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDays(tt.start, tt.end))
		})
	}
}

func TestTotalDays_SymmetricProperty(t *testing.T) {
	base := d(2024, 1, 1)
	for offset := range 60 {
		other := model.DateOf(base.Time().AddDate(0, 0, offset))
		assert.Equal(t, TotalDays(base, other), TotalDays(other, base), "offset %d", offset)
		assert.Equal(t, offset+1, TotalDays(base, other), "offset %d", offset)
	}
}

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		remaining int
		want      BalanceStatus
	}{
		{remaining: -1, want: BalanceExhausted},
		{remaining: 0, want: BalanceExhausted},
		{remaining: 1, want: BalanceLow},
		{remaining: 2, want: BalanceLow},
		{remaining: 3, want: BalanceAvailable},
		{remaining: 25, want: BalanceAvailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBalance(tt.remaining), "remaining=%d", tt.remaining)
	}
}

func TestUsagePercent(t *testing.T) {
	tests := []struct {
		name        string
		used, total int
		want        Usage
	}{
		{name: "quarter", used: 5, total: 20, want: Usage{Percent: 25, BarWidth: 25}},
		{name: "rounds half up", used: 1, total: 8, want: Usage{Percent: 13, BarWidth: 13}},
		{name: "unused", used: 0, total: 10, want: Usage{Percent: 0, BarWidth: 0}},
		{name: "full", used: 10, total: 10, want: Usage{Percent: 100, BarWidth: 100}},
		{name: "overdrawn clamps bar", used: 12, total: 10, want: Usage{Percent: 120, BarWidth: 100}},
		{name: "zero total", used: 3, total: 0, want: Usage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsagePercent(tt.used, tt.total))
		})
	}
}

func TestAggregates(t *testing.T) {
	balances := []model.LeaveBalance{
		{LeaveTypeName: "Annual", TotalDays: 20, UsedDays: 5, RemainingDays: 15},
		{LeaveTypeName: "Sick", TotalDays: 10, UsedDays: 8, RemainingDays: 2},
	}
	assert.Equal(t, 17, SumRemaining(balances))
	assert.Equal(t, 0, SumRemaining(nil))

	requests := []model.LeaveRequest{
		{ID: "1", Status: model.StatusPending},
		{ID: "2", Status: model.StatusApproved},
		{ID: "3", Status: model.StatusPending},
	}
	assert.Equal(t, 2, CountStatus(requests, model.StatusPending))
	assert.Equal(t, 1, CountStatus(requests, model.StatusApproved))
	assert.Equal(t, 0, CountStatus(requests, model.StatusRejected))
}

func TestHead(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Head(items, 5))
	assert.Equal(t, []int{1, 2}, Head(items[:2], 5))
	assert.Empty(t, Head(items, -1))
	assert.Nil(t, Head[int](nil, 3))
}
