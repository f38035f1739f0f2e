// Package balance derives the trip and savings figures from the fixed
// parameters and the full ledger. Everything here is pure: the same inputs
// always produce the same Summary, and nothing is cached between reads.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/rohanarya/tripkhata/internal/models"
)

// RemainingTripDays is the fixed window the remaining balance is spread over.
const RemainingTripDays = 3

// DynamicSums are the per-account totals over the ledger. Places carry no
// amount and never contribute.
type DynamicSums struct {
	TripSpent     int64
	SavingsSpent  int64
	TripIncome    int64
	SavingsIncome int64
}

// Summary holds every derived figure for one owner.
type Summary struct {
	DynamicSums

	TripEffectiveSpent   int64
	TripTotalIncoming    int64
	TripRemainingBalance int64
	SafeDailySpend       decimal.Decimal
	TotalSavingsBalance  int64
}

// Sum folds the ledger into per-account totals. Order-independent.
func Sum(expenses []models.Expense, incomes []models.Income) DynamicSums {
	var sums DynamicSums
	for _, exp := range expenses {
		switch exp.Account {
		case models.AccountTrip:
			sums.TripSpent += exp.Amount
		case models.AccountSavings:
			sums.SavingsSpent += exp.Amount
		}
	}
	for _, inc := range incomes {
		switch inc.Account {
		case models.AccountTrip:
			sums.TripIncome += inc.Amount
		case models.AccountSavings:
			sums.SavingsIncome += inc.Amount
		}
	}
	return sums
}

// Compute derives all figures from the current parameters and ledger totals.
//
// The platinum ticket is counted net of its still-pending portion in the
// "spent so far" figure, and the pending portion is then subtracted again
// from the remaining balance as committed-but-unpaid debt. That second
// subtraction is intentional and must not be "fixed".
func Compute(params models.FixedParameters, expenses []models.Expense, incomes []models.Income) Summary {
	sums := Sum(expenses, incomes)

	effectiveSpent := params.PlatinumTicket - params.PendingPlatinum +
		params.MyFlightShare + params.Stay + sums.TripSpent
	totalIncoming := params.ExpectedIncoming + sums.TripIncome
	remaining := params.TotalBudget - effectiveSpent - params.PendingPlatinum + totalIncoming

	return Summary{
		DynamicSums:          sums,
		TripEffectiveSpent:   effectiveSpent,
		TripTotalIncoming:    totalIncoming,
		TripRemainingBalance: remaining,
		SafeDailySpend:       safeDailySpend(remaining),
		TotalSavingsBalance:  params.BaseSavings + sums.SavingsIncome - sums.SavingsSpent,
	}
}

// safeDailySpend spreads the remaining balance over the remaining days,
// floored at zero. Real division: fractional amounts survive until the
// presentation layer rounds them.
func safeDailySpend(remaining int64) decimal.Decimal {
	if remaining <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(remaining).Div(decimal.NewFromInt(RemainingTripDays))
}
