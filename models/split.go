package models

import (
	"fmt"
	"math"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/shopspring/decimal"
)

// splitTolerance is the absolute tolerance used when comparing monetary sums.
const splitTolerance = 0.01

// computeSplits derives one split per obligated participant from the create
// request. It validates the allocation input for the chosen strategy and
// never produces zero-amount placeholder splits.
func computeSplits(req *types.ExpenseCreate, participantIDs []string) ([]types.ExpenseSplit, error) {
	switch req.SplitStrategy {
	case types.SplitStrategyEqual:
		return equalSplits(req.TotalAmount, participantIDs), nil
	case types.SplitStrategyCustom:
		return customSplits(req, participantIDs)
	case types.SplitStrategyPercentage:
		return percentageSplits(req, participantIDs)
	default:
		return nil, apperrors.DomainValidation(apperrors.KindUnsupportedStrategy,
			"Unsupported split strategy",
			fmt.Sprintf("unknown strategy %q", req.SplitStrategy))
	}
}

// equalSplits gives every participant an identical share of the total.
func equalSplits(total float64, participantIDs []string) []types.ExpenseSplit {
	share := total / float64(len(participantIDs))

	splits := make([]types.ExpenseSplit, 0, len(participantIDs))
	for _, id := range participantIDs {
		splits = append(splits, types.ExpenseSplit{UserID: id, AmountOwed: share})
	}
	return splits
}

// customSplits takes caller-supplied amounts. Every split user must be a
// participant and the amounts must sum to the expense total within tolerance.
func customSplits(req *types.ExpenseCreate, participantIDs []string) ([]types.ExpenseSplit, error) {
	if len(req.CustomSplits) == 0 {
		return nil, apperrors.DomainValidation(apperrors.KindUnsupportedStrategy,
			"Custom split amounts are required for the custom strategy", "")
	}

	participants := make(map[string]bool, len(participantIDs))
	for _, id := range participantIDs {
		participants[id] = true
	}

	var sum float64
	splits := make([]types.ExpenseSplit, 0, len(req.CustomSplits))
	for _, cs := range req.CustomSplits {
		if !participants[cs.UserID] {
			return nil, apperrors.DomainValidation(apperrors.KindSplitUserNotParticipant,
				"Split user must be a participant",
				fmt.Sprintf("user %s is not in the participant set", cs.UserID))
		}
		sum += cs.AmountOwed
		splits = append(splits, types.ExpenseSplit{UserID: cs.UserID, AmountOwed: cs.AmountOwed})
	}

	if math.Abs(sum-req.TotalAmount) > splitTolerance {
		return nil, apperrors.DomainValidation(apperrors.KindSplitSumMismatch,
			"Custom split amounts don't match total amount",
			fmt.Sprintf("splits sum to %.2f, total is %.2f", sum, req.TotalAmount))
	}

	return splits, nil
}

// percentageSplits allocates amount_owed = percentage × total, computed with
// decimal arithmetic and rounded to cents. Percentages must sum to 100 within
// tolerance.
func percentageSplits(req *types.ExpenseCreate, participantIDs []string) ([]types.ExpenseSplit, error) {
	if len(req.PercentageSplits) == 0 {
		return nil, apperrors.DomainValidation(apperrors.KindUnsupportedStrategy,
			"Percentage allocations are required for the by_percentage strategy", "")
	}

	participants := make(map[string]bool, len(participantIDs))
	for _, id := range participantIDs {
		participants[id] = true
	}

	total := decimal.NewFromFloat(req.TotalAmount)
	hundred := decimal.NewFromInt(100)

	sum := decimal.Zero
	splits := make([]types.ExpenseSplit, 0, len(req.PercentageSplits))
	for _, ps := range req.PercentageSplits {
		if !participants[ps.UserID] {
			return nil, apperrors.DomainValidation(apperrors.KindSplitUserNotParticipant,
				"Split user must be a participant",
				fmt.Sprintf("user %s is not in the participant set", ps.UserID))
		}

		pct := decimal.NewFromFloat(ps.Percentage)
		sum = sum.Add(pct)

		owed, _ := total.Mul(pct).Div(hundred).Round(2).Float64()
		splits = append(splits, types.ExpenseSplit{UserID: ps.UserID, AmountOwed: owed})
	}

	tolerance := decimal.NewFromFloat(splitTolerance)
	if sum.Sub(hundred).Abs().GreaterThan(tolerance) {
		return nil, apperrors.DomainValidation(apperrors.KindPercentageSumMismatch,
			"Split percentages must sum to 100",
			fmt.Sprintf("percentages sum to %s", sum.String()))
	}

	return splits, nil
}
