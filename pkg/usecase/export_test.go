package usecase

import "github.com/defectboard/defectboard/pkg/domain/model"

// BarTraces exposes barTraces for testing
func BarTraces(records []model.DefectRecord) []model.Trace {
	return barTraces(records)
}
