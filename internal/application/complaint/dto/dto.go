// Package dto holds the transport-facing projections of complaint domain
// objects. Handlers and use case results share these shapes.
package dto

import (
	"time"

	"fieldserve/internal/domain/complaint"
)

type ComplaintDTO struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	DealerID     uint      `json:"dealer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Priority     string    `json:"priority"`
	Source       string    `json:"source"`
	Address      string    `json:"address,omitempty"`
	Area         string    `json:"area,omitempty"`
	City         string    `json:"city,omitempty"`
	Landmark     string    `json:"landmark,omitempty"`
	Pincode      string    `json:"pincode,omitempty"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromComplaint(c *complaint.Complaint) ComplaintDTO {
	site := c.Site()
	return ComplaintDTO{
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
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func FromComplaints(complaints []*complaint.Complaint) []ComplaintDTO {
	out := make([]ComplaintDTO, len(complaints))
	for i, c := range complaints {
		out[i] = FromComplaint(c)
	}
	return out
}

type HistoryEntryDTO struct {
	ID        uint      `json:"id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ActorID   uint      `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Remark    string    `json:"remark,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromHistoryEntry(h *complaint.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        h.ID(),
		OldStatus: h.OldStatus().String(),
		NewStatus: h.NewStatus().String(),
		ActorID:   h.ActorID(),
		ActorRole: h.ActorRole(),
		Remark:    h.Remark(),
		CreatedAt: h.CreatedAt(),
	}
}

func FromHistoryEntries(entries []*complaint.HistoryEntry) []HistoryEntryDTO {
	out := make([]HistoryEntryDTO, len(entries))
	for i, h := range entries {
		out[i] = FromHistoryEntry(h)
	}
	return out
}

type NoteDTO struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromNote(n *complaint.Note) NoteDTO {
	return NoteDTO{
		ID:         n.ID(),
		AuthorID:   n.AuthorID(),
		AuthorRole: n.AuthorRole(),
		Text:       n.Text(),
		CreatedAt:  n.CreatedAt(),
	}
}

func FromNotes(notes []*complaint.Note) []NoteDTO {
	out := make([]NoteDTO, len(notes))
	for i, n := range notes {
		out[i] = FromNote(n)
	}
	return out
}
