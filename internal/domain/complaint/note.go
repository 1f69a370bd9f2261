package complaint

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// Note is a free-text annotation on a complaint. Notes are append-only;
// there is deliberately no update or delete.
type Note struct {
	id          uint
	complaintID uint
	authorID    uint
	authorRole  string
	text        string
	createdAt   time.Time
}

func NewNote(complaintID, authorID uint, authorRole, text string) (*Note, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("note text cannot be empty")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("note text exceeds maximum length of 5000 characters")
	}

	return &Note{
		complaintID: complaintID,
		authorID:    authorID,
		authorRole:  authorRole,
		text:        text,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructNote(
	id uint,
	complaintID uint,
	authorID uint,
	authorRole string,
	text string,
	createdAt time.Time,
) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Note{
		id:          id,
		complaintID: complaintID,
		authorID:    authorID,
		authorRole:  authorRole,
		text:        text,
		createdAt:   createdAt,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) ComplaintID() uint {
	return n.complaintID
}

func (n *Note) AuthorID() uint {
	return n.authorID
}

func (n *Note) AuthorRole() string {
	return n.authorRole
}

func (n *Note) Text() string {
	return n.text
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}
