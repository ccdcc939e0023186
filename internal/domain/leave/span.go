// Package leave holds the pure calculations behind the leave views:
// request spans, balance classification and usage percentages.
package leave

import (
	"math"
	"time"

	"github.com/target/leave-ui/internal/domain/model"
)

const day = 24 * time.Hour

// TotalDays returns the inclusive number of calendar days between start and end.
// It is 0 when either date is unset and symmetric in its arguments.
func TotalDays(start, end model.Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Time().Sub(start.Time())
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff)/float64(day))) + 1
}

// BalanceStatus buckets a remaining balance for display.
type BalanceStatus string

const (
	BalanceAvailable BalanceStatus = "available"
	BalanceLow       BalanceStatus = "low"
	BalanceExhausted BalanceStatus = "exhausted"
)

// LowBalanceThreshold is the largest remaining balance still considered low.
const LowBalanceThreshold = 2

// ClassifyBalance maps remaining days to a status. Overdrawn balances count as exhausted.
func ClassifyBalance(remaining int) BalanceStatus {
	switch {
	case remaining <= 0:
		return BalanceExhausted
	case remaining <= LowBalanceThreshold:
		return BalanceLow
	default:
		return BalanceAvailable
	}
}

// Usage is the share of an allowance already taken.
type Usage struct {
	// Percent is round(100*used/total) and may exceed 100 when overdrawn.
	Percent int
	// BarWidth is Percent clamped to [0, 100] for progress bars.
	BarWidth int
}

// UsagePercent computes the usage of total days. A non-positive total yields zero usage.
func UsagePercent(used, total int) Usage {
	if total <= 0 {
		return Usage{}
	}
	pct := int(math.Round(100 * float64(used) / float64(total)))
	return Usage{Percent: pct, BarWidth: min(max(pct, 0), 100)}
}

// SumRemaining adds up RemainingDays across balances.
func SumRemaining(balances []model.LeaveBalance) int {
	total := 0
	for _, b := range balances {
		total += b.RemainingDays
	}
	return total
}

// CountStatus counts requests in the given status.
func CountStatus(requests []model.LeaveRequest, status model.RequestStatus) int {
	n := 0
	for _, r := range requests {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Head returns at most n leading elements of items.
func Head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
