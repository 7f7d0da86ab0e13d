package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Money
	}{
		{"number", `12500.5`, 12500.5},
		{"integer", `1000`, 1000},
		{"quoted number", `"50000"`, 50000},
		{"quoted decimal", `"99.99"`, 99.99},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			assert.Equal(t, tt.want, m)
		})
	}
}

// Amounts leave the service as JSON strings, matching the deal backend's
// wire format, and survive a round trip.
func TestMoneyMarshalQuotes(t *testing.T) {
	out, err := json.Marshal(Money(9000))
	require.NoError(t, err)
	assert.Equal(t, `"9000"`, string(out))

	out, err = json.Marshal(Money(99.5))
	require.NoError(t, err)
	assert.Equal(t, `"99.5"`, string(out))

	var back Money
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, Money(99.5), back)
}

func TestMoneyUnmarshalRejectsGarbage(t *testing.T) {
	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &m))
}

// The deal backend quotes amounts, the order backend does not; both decode
// into the same field.
func TestMoneyInRecordPayloads(t *testing.T) {
	var deal ManualDealRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"amount":"500","stage":"Negotiation","probability":60}`), &deal))
	assert.Equal(t, Money(500), deal.Amount)

	var order OrderRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"totalAmount":1000,"status":"COMPLETED"}`), &order))
	assert.Equal(t, Money(1000), order.TotalAmount)
}

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-03-15T09:30:00Z"`, time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"java local datetime", `"2025-03-15T09:30:00"`, time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"java with nanos", `"2025-03-15T09:30:00.123"`, time.Date(2025, 3, 15, 9, 30, 0, 123000000, time.UTC)},
		{"date only", `"2025-03-15"`, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestUnifiedID(t *testing.T) {
	assert.Equal(t, "order-5", UnifiedID(TypeOrder, 5))
	assert.Equal(t, "deal-5", UnifiedID(TypeDeal, 5))
}

func TestParseUnifiedID(t *testing.T) {
	dealType, rawID, err := ParseUnifiedID("order-17")
	require.NoError(t, err)
	assert.Equal(t, TypeOrder, dealType)
	assert.Equal(t, 17, rawID)

	dealType, rawID, err = ParseUnifiedID("deal-3")
	require.NoError(t, err)
	assert.Equal(t, TypeDeal, dealType)
	assert.Equal(t, 3, rawID)

	for _, bad := range []string{"", "order", "order-", "order-x", "ticket-5", "5"} {
		_, _, err := ParseUnifiedID(bad)
		assert.ErrorIs(t, err, ErrBadUnifiedID, "input %q", bad)
	}
}

func TestDealInputValidate(t *testing.T) {
	valid := DealInput{Name: "n", Customer: "c", Stage: StageLeadIn, Probability: 50}
	assert.NoError(t, valid.Validate())

	for _, stage := range CanonicalStages {
		in := valid
		in.Stage = stage
		assert.NoError(t, in.Validate())
	}
}
