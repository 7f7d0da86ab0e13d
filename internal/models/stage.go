package models

// Канонические этапы воронки. Обе ветки (заказы и ручные сделки)
// приводятся ровно к этим шести значениям.
const (
	StageLeadIn        = "Lead In"
	StageQualification = "Qualification"
	StageProposalSent  = "Proposal Sent"
	StageNegotiation   = "Negotiation"
	StageClosedWon     = "Closed Won"
	StageClosedLost    = "Closed Lost"
)

// CanonicalStages lists the pipeline stages in board order.
var CanonicalStages = []string{
	StageLeadIn,
	StageQualification,
	StageProposalSent,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

func IsCanonicalStage(stage string) bool {
	for _, s := range CanonicalStages {
		if s == stage {
			return true
		}
	}
	return false
}
