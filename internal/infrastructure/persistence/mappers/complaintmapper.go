package mappers

import (
	"time"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)

	AssignmentToModel(a *complaint.Assignment) *models.AssignmentModel
	AssignmentToDomain(model *models.AssignmentModel) (*complaint.Assignment, error)

	HistoryToModel(h *complaint.HistoryEntry) *models.HistoryModel
	HistoryToDomain(model *models.HistoryModel) (*complaint.HistoryEntry, error)

	NoteToModel(n *complaint.Note) *models.NoteModel
	NoteToDomain(model *models.NoteModel) (*complaint.Note, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	site := c.Site()
	return &models.ComplaintModel{
		ID:           c.ID(),
		Code:         c.Code(),
		DealerID:     c.DealerID(),
		Title:        c.Title(),
		Description:  c.Description(),
		Category:     c.Category().String(),
		Priority:     c.Priority().String(),
		Source:       c.Source().String(),
		Address:      site.Address,
		Area:         site.Area,
		City:         site.City,
		Landmark:     site.Landmark,
		Pincode:      site.Pincode,
		ContactName:  c.ContactName(),
		ContactPhone: c.ContactPhone(),
		Status:       c.Status().String(),
		Version:      c.Version(),
		CreatedAt:    c.CreatedAt().UnixMilli(),
		UpdatedAt:    c.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	site := complaint.Site{
		Address:  model.Address,
		Area:     model.Area,
		City:     model.City,
		Landmark: model.Landmark,
		Pincode:  model.Pincode,
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.Code,
		model.DealerID,
		model.Title,
		model.Description,
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.Source(model.Source),
		site,
		model.ContactName,
		model.ContactPhone,
		vo.Status(model.Status),
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *ComplaintMapperImpl) AssignmentToModel(a *complaint.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:           a.ID(),
		ComplaintID:  a.ComplaintID(),
		TechnicianID: a.TechnicianID(),
		AssignedBy:   a.AssignedBy(),
		IsActive:     a.IsActive(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) AssignmentToDomain(model *models.AssignmentModel) (*complaint.Assignment, error) {
	return complaint.ReconstructAssignment(
		model.ID,
		model.ComplaintID,
		model.TechnicianID,
		model.AssignedBy,
		model.IsActive,
		convertMillisToTime(model.CreatedAt),
	)
}

func (m *ComplaintMapperImpl) HistoryToModel(h *complaint.HistoryEntry) *models.HistoryModel {
	return &models.HistoryModel{
		ID:          h.ID(),
		ComplaintID: h.ComplaintID(),
		OldStatus:   h.OldStatus().String(),
		NewStatus:   h.NewStatus().String(),
		ActorID:     h.ActorID(),
		ActorRole:   h.ActorRole(),
		Remark:      h.Remark(),
		CreatedAt:   h.CreatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) HistoryToDomain(model *models.HistoryModel) (*complaint.HistoryEntry, error) {
	return complaint.ReconstructHistoryEntry(
		model.ID,
		model.ComplaintID,
		vo.Status(model.OldStatus),
		vo.Status(model.NewStatus),
		model.ActorID,
		model.ActorRole,
		model.Remark,
		convertMillisToTime(model.CreatedAt),
	)
}

func (m *ComplaintMapperImpl) NoteToModel(n *complaint.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:          n.ID(),
		ComplaintID: n.ComplaintID(),
		AuthorID:    n.AuthorID(),
		AuthorRole:  n.AuthorRole(),
		Text:        n.Text(),
		CreatedAt:   n.CreatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) NoteToDomain(model *models.NoteModel) (*complaint.Note, error) {
	return complaint.ReconstructNote(
		model.ID,
		model.ComplaintID,
		model.AuthorID,
		model.AuthorRole,
		model.Text,
		convertMillisToTime(model.CreatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
