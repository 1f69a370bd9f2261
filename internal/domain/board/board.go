// Package board builds the read-side grouping of complaints by status used
// for drag-to-change-status views. The projection is derived and disposable:
// it is rebuilt from the complaint store on load and after any failed move.
// Nothing here writes back; the authoritative state machine stays in the
// complaint aggregate.
package board

import (
	"sort"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
)

// Projection maps every status to its column. All six columns are always
// present, empty columns included.
type Projection map[vo.Status][]*complaint.Complaint

// Project groups complaints by status, newest created first within each
// column.
func Project(complaints []*complaint.Complaint) Projection {
	p := make(Projection, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		p[s] = []*complaint.Complaint{}
	}

	for _, c := range complaints {
		p[c.Status()] = append(p[c.Status()], c)
	}

	for s := range p {
		col := p[s]
		sort.SliceStable(col, func(i, j int) bool {
			return col[i].CreatedAt().After(col[j].CreatedAt())
		})
	}

	return p
}

// ApplyMove returns a new projection with the complaint moved between
// columns. It is pure and performs no lifecycle validation: the optimistic
// UI applies the move immediately and the real status change decides whether
// it sticks. Moving within the same column, or moving an id that is not in
// the source column, returns the projection unchanged.
func ApplyMove(p Projection, complaintID uint, from, to vo.Status) Projection {
	if from == to {
		return p
	}

	var moved *complaint.Complaint
	for _, c := range p[from] {
		if c.ID() == complaintID {
			moved = c
			break
		}
	}
	if moved == nil {
		return p
	}

	next := make(Projection, len(p))
	for s, col := range p {
		switch s {
		case from:
			filtered := make([]*complaint.Complaint, 0, len(col)-1)
			for _, c := range col {
				if c.ID() != complaintID {
					filtered = append(filtered, c)
				}
			}
			next[s] = filtered
		case to:
			dest := make([]*complaint.Complaint, 0, len(col)+1)
			dest = append(dest, moved)
			dest = append(dest, col...)
			next[s] = dest
		default:
			next[s] = col
		}
	}

	return next
}

// Count returns the total number of complaints across all columns.
func Count(p Projection) int {
	total := 0
	for _, col := range p {
		total += len(col)
	}
	return total
}
