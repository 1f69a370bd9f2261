package mappers

import (
	"time"

	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/infrastructure/persistence/models"
)

// JobCardMapper handles the conversion between job card domain entities and
// persistence models.
type JobCardMapper interface {
	ToModel(card *jobcard.JobCard) *models.JobCardModel
	ToDomain(model *models.JobCardModel) (*jobcard.JobCard, error)
}

type JobCardMapperImpl struct{}

func NewJobCardMapper() JobCardMapper {
	return &JobCardMapperImpl{}
}

func (m *JobCardMapperImpl) ToModel(card *jobcard.JobCard) *models.JobCardModel {
	snap := card.Snapshot()
	model := &models.JobCardModel{
		ID:                  card.ID(),
		ComplaintID:         card.ComplaintID(),
		CustomerName:        snap.CustomerName,
		CustomerPhone:       snap.CustomerPhone,
		CustomerAddress:     snap.CustomerAddress,
		ComplaintCode:       snap.ComplaintCode,
		ComplaintTitle:      snap.ComplaintTitle,
		Category:            snap.Category,
		WorkPerformed:       card.WorkPerformed(),
		PartsUsed:           card.PartsUsed(),
		ResolutionNotes:     card.ResolutionNotes(),
		TechnicianSignature: card.TechnicianSignature(),
		CustomerSignature:   card.CustomerSignature(),
		Status:              card.Status().String(),
		CreatedAt:           card.CreatedAt().UnixMilli(),
		UpdatedAt:           card.UpdatedAt().UnixMilli(),
	}

	if card.ArrivedAt() != nil {
		arrived := card.ArrivedAt().UnixMilli()
		model.ArrivedAt = &arrived
	}
	if card.DepartedAt() != nil {
		departed := card.DepartedAt().UnixMilli()
		model.DepartedAt = &departed
	}

	return model
}

func (m *JobCardMapperImpl) ToDomain(model *models.JobCardModel) (*jobcard.JobCard, error) {
	snap := jobcard.Snapshot{
		CustomerName:    model.CustomerName,
		CustomerPhone:   model.CustomerPhone,
		CustomerAddress: model.CustomerAddress,
		ComplaintCode:   model.ComplaintCode,
		ComplaintTitle:  model.ComplaintTitle,
		Category:        model.Category,
	}

	var arrivedAt, departedAt *time.Time
	if model.ArrivedAt != nil {
		t := convertMillisToTime(*model.ArrivedAt)
		arrivedAt = &t
	}
	if model.DepartedAt != nil {
		t := convertMillisToTime(*model.DepartedAt)
		departedAt = &t
	}

	return jobcard.ReconstructJobCard(
		model.ID,
		model.ComplaintID,
		snap,
		model.WorkPerformed,
		model.PartsUsed,
		model.ResolutionNotes,
		arrivedAt,
		departedAt,
		model.TechnicianSignature,
		model.CustomerSignature,
		jobcard.CardStatus(model.Status),
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
