package httpx

import (
	"net/http"

	"github.com/target/leave-ui/internal/domain/leave"
	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
)

var balanceMeta = PageMeta{Title: "Leave Balance", PageTitle: "Leave Balance", CurrentPage: PageBalance}

// BalanceCard is one leave type's balance prepared for display.
type BalanceCard struct {
	model.LeaveBalance
	Status leave.BalanceStatus
	Usage  leave.Usage
}

func balanceCards(balances []model.LeaveBalance) []BalanceCard {
	cards := make([]BalanceCard, 0, len(balances))
	for _, b := range balances {
		cards = append(cards, BalanceCard{
			LeaveBalance: b,
			Status:       leave.ClassifyBalance(b.RemainingDays),
			Usage:        leave.UsagePercent(b.UsedDays, b.TotalDays),
		})
	}
	return cards
}

// BalancePage renders one card per leave type with the remaining days and usage.
// GET /balance.
func (h *UIHandlers) BalancePage(w http.ResponseWriter, r *http.Request) {
	builder := NewTemplateData(r, balanceMeta)

	balances, err := h.Leave.ListLeaveBalances(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "load leave balances failed", "error", err)
		builder.WithError(apperrors.MessageOr(err, msgLoadBalances))
	}

	builder.With("Balances", balanceCards(balances))
	h.renderPage(w, r, builder.Build())
}
