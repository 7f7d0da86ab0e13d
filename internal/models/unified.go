package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type DealType string

const (
	TypeOrder DealType = "order"
	TypeDeal  DealType = "deal"
)

// UnifiedDeal is the merged, display-ready representation of one pipeline
// entry, regardless of whether it originated as an order or a manual deal.
// Instances are rebuilt on every aggregation pass and never persisted.
type UnifiedDeal struct {
	ID             string   `json:"id"`
	RawID          int      `json:"rawId"`
	Type           DealType `json:"type"`
	Name           string   `json:"name"`
	Customer       string   `json:"customer"`
	Amount         Money    `json:"amount"`
	Stage          string   `json:"stage"`
	Probability    int      `json:"probability"`
	Owner          string   `json:"owner"`
	DueDate        string   `json:"dueDate"`
	OriginalStatus string   `json:"originalStatus,omitempty"`
}

// UnifiedID builds the source-prefixed id ("order-5" / "deal-5") that keeps
// an order and a manual deal with the same raw id from colliding.
func UnifiedID(t DealType, rawID int) string {
	return fmt.Sprintf("%s-%d", t, rawID)
}

var ErrBadUnifiedID = errors.New("id must look like order-<n> or deal-<n>")

// ParseUnifiedID splits a prefixed id back into source type and raw id.
func ParseUnifiedID(id string) (DealType, int, error) {
	prefix, rawPart, ok := strings.Cut(id, "-")
	if !ok {
		return "", 0, ErrBadUnifiedID
	}
	t := DealType(prefix)
	if t != TypeOrder && t != TypeDeal {
		return "", 0, ErrBadUnifiedID
	}
	rawID, err := strconv.Atoi(rawPart)
	if err != nil {
		return "", 0, ErrBadUnifiedID
	}
	return t, rawID, nil
}

type StageSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"` // percent of total
	Deals int     `json:"deals"`
}

type Metrics struct {
	TotalCount        int          `json:"totalCount"`
	TotalValue        float64      `json:"totalValue"`
	AvgDealSize       float64      `json:"avgDealSize"`
	ClosedWonCount    int          `json:"closedWonCount"`
	WinRatePercent    float64      `json:"winRatePercent"`
	StageDistribution []StageSlice `json:"stageDistribution"`
}
