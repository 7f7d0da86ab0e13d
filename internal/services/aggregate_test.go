package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calzone/internal/models"
)

func TestMergeSourcesOrdering(t *testing.T) {
	deals := []models.ManualDealRecord{
		{ID: 1, Name: "D1", Stage: models.StageLeadIn},
		{ID: 2, Name: "D2", Stage: models.StageLeadIn},
	}
	orders := []models.OrderRecord{
		{ID: 3, ServiceName: "O1"},
	}

	merged := MergeSources(orders, deals)
	require.Len(t, merged, 3)
	assert.Equal(t, "D1", merged[0].Name)
	assert.Equal(t, "D2", merged[1].Name)
	assert.Equal(t, "O1", merged[2].Name)
}

// An order and a manual deal may share a raw numeric id without colliding.
func TestMergeSourcesIDUniqueness(t *testing.T) {
	merged := MergeSources(
		[]models.OrderRecord{{ID: 5}},
		[]models.ManualDealRecord{{ID: 5, Name: "Manual", Stage: models.StageLeadIn}},
	)
	require.Len(t, merged, 2)
	assert.Equal(t, "deal-5", merged[0].ID)
	assert.Equal(t, "order-5", merged[1].ID)
	assert.NotEqual(t, merged[0].ID, merged[1].ID)
}

func TestMergeSourcesEmpty(t *testing.T) {
	merged := MergeSources(nil, nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestAddLocalDealPrepends(t *testing.T) {
	existing := MergeSources([]models.OrderRecord{{ID: 1}}, nil)
	existingCopy := append([]models.UnifiedDeal(nil), existing...)

	out := AddLocalDeal(existing, models.ManualDealRecord{ID: 99, Name: "Fresh", Stage: models.StageLeadIn})
	require.Len(t, out, 2)
	assert.Equal(t, "deal-99", out[0].ID)
	assert.Equal(t, "order-1", out[1].ID)

	// input slice untouched
	assert.Equal(t, existingCopy, existing)
}
