package services

import (
	"strings"

	"calzone/internal/models"
)

// Одна каноническая таблица "семейство статуса -> (этап, вероятность)".
// Раньше этап и вероятность жили в двух независимых таблицах и разъезжались;
// теперь обе функции читают отсюда.
type stageMapping struct {
	keyword     string
	stage       string
	probability int
}

// Matching is ordered, first substring hit wins.
var statusFamilies = []stageMapping{
	{"CREATED", models.StageQualification, 20},
	{"PENDING", models.StageQualification, 40},
	{"PROCESSING", models.StageNegotiation, 60},
	{"IN_PROGRESS", models.StageNegotiation, 60},
	{"COMPLETED", models.StageClosedWon, 100},
	{"APPROVED", models.StageClosedWon, 100},
	{"CANCELLED", models.StageClosedLost, 0},
	{"REJECTED", models.StageClosedLost, 0},
}

const (
	// статус отсутствует — заказ только заведён
	absentStage       = models.StageLeadIn
	absentProbability = 10
	// статус есть, но ни одно семейство не совпало
	unknownStage       = models.StageProposalSent
	unknownProbability = 50
)

func lookupStatus(status string) (string, int, bool) {
	if status == "" {
		return absentStage, absentProbability, false
	}
	s := strings.ToUpper(status)
	for _, m := range statusFamilies {
		if strings.Contains(s, m.keyword) {
			return m.stage, m.probability, true
		}
	}
	return unknownStage, unknownProbability, false
}

// MapStatusToStage maps a free-form backend order status onto one of the six
// canonical pipeline stages. Total: any input yields a canonical stage.
func MapStatusToStage(status string) string {
	stage, _, _ := lookupStatus(status)
	return stage
}

// MapStatusToProbability returns the win probability weight for a backend
// order status, always within [0,100].
func MapStatusToProbability(status string) int {
	_, probability, _ := lookupStatus(status)
	return probability
}
