package complaint

import (
	"fmt"
	"time"

	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/shared/biztime"
)

// Site describes where the reported installation lives.
type Site struct {
	Address  string
	Area     string
	City     string
	Landmark string
	Pincode  string
}

// Complaint is a customer-reported service issue tracked through the status
// lifecycle. The code is immutable once set and unique per dealer account.
type Complaint struct {
	id           uint
	code         string
	dealerID     uint
	title        string
	description  string
	category     vo.Category
	priority     vo.Priority
	source       vo.Source
	site         Site
	contactName  string
	contactPhone string
	status       vo.Status
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewComplaint(
	dealerID uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	source vo.Source,
	site Site,
	contactName string,
	contactPhone string,
) (*Complaint, error) {
	if dealerID == 0 {
		return nil, fmt.Errorf("dealer ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("invalid source")
	}
	if len(site.Pincode) > 10 {
		return nil, fmt.Errorf("pincode exceeds maximum length of 10 characters")
	}
	if len(contactPhone) > 20 {
		return nil, fmt.Errorf("contact phone exceeds maximum length of 20 characters")
	}

	now := biztime.NowUTC()

	return &Complaint{
		dealerID:     dealerID,
		title:        title,
		description:  description,
		category:     category,
		priority:     priority,
		source:       source,
		site:         site,
		contactName:  contactName,
		contactPhone: contactPhone,
		status:       vo.StatusNew,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	code string,
	dealerID uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	source vo.Source,
	site Site,
	contactName string,
	contactPhone string,
	status vo.Status,
	version int,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("complaint code is required")
	}
	if dealerID == 0 {
		return nil, fmt.Errorf("dealer ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("invalid source")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Complaint{
		id:           id,
		code:         code,
		dealerID:     dealerID,
		title:        title,
		description:  description,
		category:     category,
		priority:     priority,
		source:       source,
		site:         site,
		contactName:  contactName,
		contactPhone: contactPhone,
		status:       status,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Complaint) ID() uint {
	return c.id
}

func (c *Complaint) Code() string {
	return c.code
}

func (c *Complaint) DealerID() uint {
	return c.dealerID
}

func (c *Complaint) Title() string {
	return c.title
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) Category() vo.Category {
	return c.category
}

func (c *Complaint) Priority() vo.Priority {
	return c.priority
}

func (c *Complaint) Source() vo.Source {
	return c.source
}

func (c *Complaint) Site() Site {
	return c.site
}

func (c *Complaint) ContactName() string {
	return c.contactName
}

func (c *Complaint) ContactPhone() string {
	return c.contactPhone
}

func (c *Complaint) Status() vo.Status {
	return c.status
}

func (c *Complaint) Version() int {
	return c.version
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetCode assigns the generated complaint code. The code is write-once.
func (c *Complaint) SetCode(code string) error {
	if len(c.code) > 0 {
		return fmt.Errorf("complaint code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("complaint code cannot be empty")
	}
	c.code = code
	return nil
}

// ErrInvalidTransition marks a status change whose edge is not in the
// lifecycle graph. Callers translate it into the application error taxonomy.
type ErrInvalidTransition struct {
	From vo.Status
	To   vo.Status
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

// ChangeStatus applies a validated lifecycle transition. A same-status change
// is a no-op. The version bump is what serializes racing writers at the store.
func (c *Complaint) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if c.status == newStatus {
		return nil
	}

	if !c.status.CanTransitionTo(newStatus) {
		return &ErrInvalidTransition{From: c.status, To: newStatus}
	}

	c.status = newStatus
	c.updatedAt = biztime.NowUTC()
	c.version++

	return nil
}

// UpdateDetails edits the descriptive fields of an open complaint. Lifecycle
// state and the code are not touched here.
func (c *Complaint) UpdateDetails(title, description string, priority vo.Priority, site Site, contactName, contactPhone string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}

	c.title = title
	c.description = description
	c.priority = priority
	c.site = site
	c.contactName = contactName
	c.contactPhone = contactPhone
	c.updatedAt = biztime.NowUTC()
	c.version++

	return nil
}
