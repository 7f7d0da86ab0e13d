package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calzone/internal/models"
)

func TestMapStatusToStage(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"CREATED", models.StageQualification},
		{"created", models.StageQualification},
		{"PENDING", models.StageQualification},
		{"PAYMENT_PENDING", models.StageQualification},
		{"PROCESSING", models.StageNegotiation},
		{"IN_PROGRESS", models.StageNegotiation},
		{"COMPLETED", models.StageClosedWon},
		{"APPROVED", models.StageClosedWon},
		{"CANCELLED", models.StageClosedLost},
		{"REJECTED", models.StageClosedLost},
		{"", models.StageLeadIn},
		{"SOMETHING_ELSE", models.StageProposalSent},
		{"   ", models.StageProposalSent},
	}
	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatusToStage(tt.status))
		})
	}
}

func TestMapStatusToProbability(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{"CREATED", 20},
		{"PENDING", 40},
		{"PROCESSING", 60},
		{"IN_PROGRESS", 60},
		{"COMPLETED", 100},
		{"APPROVED", 100},
		{"CANCELLED", 0},
		{"REJECTED", 0},
		{"", 10},
		{"UNKNOWN_STATE", 50},
	}
	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatusToProbability(tt.status))
		})
	}
}

// Both mapping functions read the same table; whatever the input, the stage
// must be canonical and the probability within [0,100].
func TestMappingTotality(t *testing.T) {
	inputs := []string{
		"", " ", "CREATED", "garbage", "ЗАКАЗ", "completed-but-refunded",
		"CANCELLED_BY_USER", "in_progress", "\x00weird", "PENDINGCREATED",
	}
	for _, status := range inputs {
		stage := MapStatusToStage(status)
		assert.True(t, models.IsCanonicalStage(stage), "stage %q for status %q", stage, status)

		p := MapStatusToProbability(status)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

// First substring match wins in table order.
func TestMappingPriorityOrder(t *testing.T) {
	// contains both CREATED and CANCELLED; CREATED is checked first
	assert.Equal(t, models.StageQualification, MapStatusToStage("CREATED_THEN_CANCELLED"))
	assert.Equal(t, 20, MapStatusToProbability("CREATED_THEN_CANCELLED"))
}
