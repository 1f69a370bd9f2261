package models

type ComplaintModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"uniqueIndex;size:50;not null"`
	DealerID     uint   `gorm:"not null;index"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	Category     string `gorm:"size:50;not null;index"`
	Priority     string `gorm:"size:20;not null;index"`
	Source       string `gorm:"size:20;not null"`
	Address      string `gorm:"size:500"`
	Area         string `gorm:"size:100"`
	City         string `gorm:"size:100"`
	Landmark     string `gorm:"size:200"`
	Pincode      string `gorm:"size:10"`
	ContactName  string `gorm:"size:100"`
	ContactPhone string `gorm:"size:20"`
	Status       string `gorm:"size:20;not null;index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type AssignmentModel struct {
	ID           uint  `gorm:"primaryKey"`
	ComplaintID  uint  `gorm:"not null;index:idx_assignments_complaint_active"`
	TechnicianID uint  `gorm:"not null;index"`
	AssignedBy   uint  `gorm:"not null"`
	IsActive     bool  `gorm:"not null;default:true;index:idx_assignments_complaint_active"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
}

func (AssignmentModel) TableName() string {
	return "complaint_assignments"
}

type HistoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	OldStatus   string `gorm:"size:20;not null"`
	NewStatus   string `gorm:"size:20;not null"`
	ActorID     uint   `gorm:"not null"`
	ActorRole   string `gorm:"size:20;not null"`
	Remark      string `gorm:"size:1000"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (HistoryModel) TableName() string {
	return "complaint_history"
}

type NoteModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	AuthorID    uint   `gorm:"not null;index"`
	AuthorRole  string `gorm:"size:20;not null"`
	Text        string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NoteModel) TableName() string {
	return "complaint_notes"
}
