// Package dto holds the transport-facing projection of job cards.
package dto

import (
	"time"

	"fieldserve/internal/domain/jobcard"
)

type JobCardDTO struct {
	ID          uint `json:"id"`
	ComplaintID uint `json:"complaint_id"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
	ComplaintCode   string `json:"complaint_code"`
	ComplaintTitle  string `json:"complaint_title"`
	Category        string `json:"category"`

	WorkPerformed       string     `json:"work_performed,omitempty"`
	PartsUsed           string     `json:"parts_used,omitempty"`
	ResolutionNotes     string     `json:"resolution_notes,omitempty"`
	ArrivedAt           *time.Time `json:"arrived_at,omitempty"`
	DepartedAt          *time.Time `json:"departed_at,omitempty"`
	TechnicianSignature string     `json:"technician_signature,omitempty"`
	CustomerSignature   string     `json:"customer_signature,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJobCard(card *jobcard.JobCard) JobCardDTO {
	snap := card.Snapshot()
	return JobCardDTO{
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
		ArrivedAt:           card.ArrivedAt(),
		DepartedAt:          card.DepartedAt(),
		TechnicianSignature: card.TechnicianSignature(),
		CustomerSignature:   card.CustomerSignature(),
		Status:              card.Status().String(),
		CreatedAt:           card.CreatedAt(),
		UpdatedAt:           card.UpdatedAt(),
	}
}
