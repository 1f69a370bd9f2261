package jobcard

import (
	"time"

	"fieldserve/internal/application/jobcard/usecases"
	"fieldserve/internal/domain/identity"
)

type UpdateJobCardRequest struct {
	WorkPerformed       *string    `json:"work_performed,omitempty" binding:"omitempty,max=5000"`
	PartsUsed           *string    `json:"parts_used,omitempty" binding:"omitempty,max=5000"`
	ResolutionNotes     *string    `json:"resolution_notes,omitempty" binding:"omitempty,max=5000"`
	ArrivedAt           *time.Time `json:"arrived_at,omitempty"`
	DepartedAt          *time.Time `json:"departed_at,omitempty"`
	TechnicianSignature *string    `json:"technician_signature,omitempty"`
	CustomerSignature   *string    `json:"customer_signature,omitempty"`
	Complete            bool       `json:"complete,omitempty"`
}

func (r *UpdateJobCardRequest) ToCommand(actor identity.Actor, jobCardID uint) usecases.UpdateJobCardCommand {
	return usecases.UpdateJobCardCommand{
		Actor:               actor,
		JobCardID:           jobCardID,
		WorkPerformed:       r.WorkPerformed,
		PartsUsed:           r.PartsUsed,
		ResolutionNotes:     r.ResolutionNotes,
		ArrivedAt:           r.ArrivedAt,
		DepartedAt:          r.DepartedAt,
		TechnicianSignature: r.TechnicianSignature,
		CustomerSignature:   r.CustomerSignature,
		Complete:            r.Complete,
	}
}
