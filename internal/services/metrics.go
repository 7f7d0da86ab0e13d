package services

import (
	"math"
	"sort"

	"calzone/internal/models"
)

// ComputeMetrics derives the dashboard KPI block from a merged deal list.
// Pure; safe on an empty list (no NaN/Inf ever reaches the caller).
func ComputeMetrics(deals []models.UnifiedDeal) models.Metrics {
	m := models.Metrics{TotalCount: len(deals)}

	if m.TotalCount == 0 {
		// синтетический срез, чтобы диаграммы не делили на ноль
		m.StageDistribution = []models.StageSlice{{Name: "No Data", Value: 100, Deals: 0}}
		return m
	}

	stageCounts := map[string]int{}
	for _, d := range deals {
		m.TotalValue += d.Amount.Float64()
		stageCounts[d.Stage]++
		if d.Stage == models.StageClosedWon {
			m.ClosedWonCount++
		}
	}

	total := float64(m.TotalCount)
	m.AvgDealSize = math.Round(m.TotalValue / total)
	m.WinRatePercent = math.Round(float64(m.ClosedWonCount)/total*1000) / 10

	for _, stage := range models.CanonicalStages {
		count, ok := stageCounts[stage]
		if !ok {
			continue
		}
		m.StageDistribution = append(m.StageDistribution, models.StageSlice{
			Name:  stage,
			Value: float64(count) / total * 100,
			Deals: count,
		})
	}
	// non-canonical stages can only come from the deal backend; keep them
	// visible rather than silently dropping the slice
	var extra []string
	for stage := range stageCounts {
		if !models.IsCanonicalStage(stage) {
			extra = append(extra, stage)
		}
	}
	sort.Strings(extra)
	for _, stage := range extra {
		m.StageDistribution = append(m.StageDistribution, models.StageSlice{
			Name:  stage,
			Value: float64(stageCounts[stage]) / total * 100,
			Deals: stageCounts[stage],
		})
	}
	return m
}
