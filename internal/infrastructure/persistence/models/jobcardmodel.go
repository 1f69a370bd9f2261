package models

type JobCardModel struct {
	ID          uint `gorm:"primaryKey"`
	ComplaintID uint `gorm:"uniqueIndex;not null"`

	CustomerName    string `gorm:"size:100;not null"`
	CustomerPhone   string `gorm:"size:20"`
	CustomerAddress string `gorm:"size:500"`
	ComplaintCode   string `gorm:"size:50;not null"`
	ComplaintTitle  string `gorm:"size:200;not null"`
	Category        string `gorm:"size:50;not null"`

	WorkPerformed       string `gorm:"type:text"`
	PartsUsed           string `gorm:"type:text"`
	ResolutionNotes     string `gorm:"type:text"`
	ArrivedAt           *int64
	DepartedAt          *int64
	TechnicianSignature string `gorm:"type:text"`
	CustomerSignature   string `gorm:"type:text"`

	Status    string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (JobCardModel) TableName() string {
	return "job_cards"
}
