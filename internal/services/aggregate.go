package services

import (
	"calzone/internal/models"
)

// MergeSources normalizes both source lists into one pipeline view.
// Manual deals come first, then mapped orders; within each group the
// upstream ordering is preserved (stable concatenation, no sort).
func MergeSources(orders []models.OrderRecord, deals []models.ManualDealRecord) []models.UnifiedDeal {
	merged := make([]models.UnifiedDeal, 0, len(orders)+len(deals))
	for _, d := range deals {
		merged = append(merged, NormalizeDeal(d))
	}
	for _, o := range orders {
		merged = append(merged, NormalizeOrder(o))
	}
	return merged
}

// AddLocalDeal prepends a freshly created manual deal to an existing view
// without re-fetching. The input slice is not mutated.
func AddLocalDeal(existing []models.UnifiedDeal, newDeal models.ManualDealRecord) []models.UnifiedDeal {
	out := make([]models.UnifiedDeal, 0, len(existing)+1)
	out = append(out, NormalizeDeal(newDeal))
	out = append(out, existing...)
	return out
}
