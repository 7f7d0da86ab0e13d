package services

import (
	"fmt"

	"calzone/internal/models"
)

const (
	orderDueDateFormat = "02/01/2006"
	noDueDate          = "N/A"
	unassignedOwner    = "Unassigned"
	unknownCustomer    = "Unknown"
)

// NormalizeOrder maps a backend order onto the unified deal shape. Missing
// optional fields are defaulted, never rejected.
func NormalizeOrder(order models.OrderRecord) models.UnifiedDeal {
	name := order.ServiceName
	if name == "" {
		name = fmt.Sprintf("Order #%d", order.ID)
	}
	customer := order.CustomerEmail
	if customer == "" {
		customer = unknownCustomer
	}
	owner := order.AssigneeEmail
	if owner == "" {
		owner = unassignedOwner
	}
	dueDate := noDueDate
	if !order.CreatedAt.IsZero() {
		dueDate = order.CreatedAt.Format(orderDueDateFormat)
	}
	return models.UnifiedDeal{
		ID:             models.UnifiedID(models.TypeOrder, order.ID),
		RawID:          order.ID,
		Type:           models.TypeOrder,
		Name:           name,
		Customer:       customer,
		Amount:         order.TotalAmount,
		Stage:          MapStatusToStage(order.Status),
		Probability:    MapStatusToProbability(order.Status),
		Owner:          owner,
		DueDate:        dueDate,
		OriginalStatus: order.Status,
	}
}

// NormalizeDeal maps a manual deal onto the unified shape. Stage and
// probability pass through as entered by the operator; probability is
// clamped so malformed upstream data cannot break the [0,100] invariant.
func NormalizeDeal(deal models.ManualDealRecord) models.UnifiedDeal {
	owner := deal.Owner
	if owner == "" {
		owner = unassignedOwner
	}
	dueDate := deal.DueDate
	if dueDate == "" {
		dueDate = noDueDate
	}
	probability := deal.Probability
	if probability < 0 {
		probability = 0
	} else if probability > 100 {
		probability = 100
	}
	return models.UnifiedDeal{
		ID:          models.UnifiedID(models.TypeDeal, deal.ID),
		RawID:       deal.ID,
		Type:        models.TypeDeal,
		Name:        deal.Name,
		Customer:    deal.Customer,
		Amount:      deal.Amount,
		Stage:       deal.Stage,
		Probability: probability,
		Owner:       owner,
		DueDate:     dueDate,
	}
}
