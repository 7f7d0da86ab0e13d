package models

import "errors"

// ManualDealRecord is a user-created pipeline record from the deal backend.
// Amount travels as a JSON string there, hence Money.
type ManualDealRecord struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Customer    string    `json:"customer"`
	Amount      Money     `json:"amount"`
	Stage       string    `json:"stage"`
	Probability int       `json:"probability"`
	Owner       string    `json:"owner"`
	DueDate     string    `json:"dueDate"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// DealInput is the create payload accepted from the dashboard and forwarded
// to the deal backend.
type DealInput struct {
	Name        string `json:"name"`
	Customer    string `json:"customer"`
	Amount      Money  `json:"amount"`
	Stage       string `json:"stage"`
	Probability int    `json:"probability"`
	Owner       string `json:"owner"`
	DueDate     string `json:"dueDate"`
}

var (
	ErrNameRequired     = errors.New("name is required")
	ErrCustomerRequired = errors.New("customer is required")
	ErrInvalidStage     = errors.New("stage must be one of the canonical pipeline stages")
	ErrInvalidProb      = errors.New("probability must be between 0 and 100")
)

func (d *DealInput) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Customer == "" {
		return ErrCustomerRequired
	}
	if !IsCanonicalStage(d.Stage) {
		return ErrInvalidStage
	}
	if d.Probability < 0 || d.Probability > 100 {
		return ErrInvalidProb
	}
	return nil
}
