package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calzone/internal/models"
)

func TestNormalizeOrderDefaults(t *testing.T) {
	// order with every optional field absent
	got := NormalizeOrder(models.OrderRecord{ID: 7})

	assert.Equal(t, "order-7", got.ID)
	assert.Equal(t, 7, got.RawID)
	assert.Equal(t, models.TypeOrder, got.Type)
	assert.Equal(t, "Order #7", got.Name)
	assert.Equal(t, "Unknown", got.Customer)
	assert.Equal(t, models.Money(0), got.Amount)
	assert.Equal(t, "Unassigned", got.Owner)
	assert.Equal(t, "N/A", got.DueDate)
	assert.Equal(t, models.StageLeadIn, got.Stage)
	assert.Equal(t, 10, got.Probability)
	assert.Empty(t, got.OriginalStatus)
}

func TestNormalizeOrderFull(t *testing.T) {
	createdAt, err := time.Parse(time.RFC3339, "2025-03-15T09:30:00Z")
	require.NoError(t, err)

	order := models.OrderRecord{
		ID:            42,
		ServiceName:   "GST Registration",
		CustomerEmail: "client@example.com",
		Status:        "IN_PROGRESS",
		AssigneeEmail: "alice@calzone.example",
		TotalAmount:   12500,
		CreatedAt:     models.Timestamp{Time: createdAt},
	}
	got := NormalizeOrder(order)

	assert.Equal(t, "order-42", got.ID)
	assert.Equal(t, "GST Registration", got.Name)
	assert.Equal(t, "client@example.com", got.Customer)
	assert.Equal(t, models.StageNegotiation, got.Stage)
	assert.Equal(t, 60, got.Probability)
	assert.Equal(t, "alice@calzone.example", got.Owner)
	assert.Equal(t, "15/03/2025", got.DueDate)
	assert.Equal(t, "IN_PROGRESS", got.OriginalStatus)
}

func TestNormalizeOrderDoesNotMutate(t *testing.T) {
	order := models.OrderRecord{ID: 1, Status: "COMPLETED"}
	before := order
	_ = NormalizeOrder(order)
	assert.Equal(t, before, order)
}

func TestNormalizeDeal(t *testing.T) {
	deal := models.ManualDealRecord{
		ID:          5,
		Name:        "Enterprise onboarding",
		Customer:    "Acme Ltd",
		Amount:      50000,
		Stage:       models.StageProposalSent,
		Probability: 70,
		Owner:       "bob@calzone.example",
		DueDate:     "2025-09-30",
	}
	got := NormalizeDeal(deal)

	assert.Equal(t, "deal-5", got.ID)
	assert.Equal(t, models.TypeDeal, got.Type)
	assert.Equal(t, "Enterprise onboarding", got.Name)
	assert.Equal(t, models.StageProposalSent, got.Stage)
	assert.Equal(t, 70, got.Probability)
	assert.Equal(t, "bob@calzone.example", got.Owner)
	assert.Equal(t, "2025-09-30", got.DueDate)
	assert.Empty(t, got.OriginalStatus)
}

func TestNormalizeDealDefaultsAndClamping(t *testing.T) {
	got := NormalizeDeal(models.ManualDealRecord{ID: 9, Probability: 150})
	assert.Equal(t, "Unassigned", got.Owner)
	assert.Equal(t, "N/A", got.DueDate)
	assert.Equal(t, 100, got.Probability)

	got = NormalizeDeal(models.ManualDealRecord{ID: 10, Probability: -5})
	assert.Equal(t, 0, got.Probability)
}
