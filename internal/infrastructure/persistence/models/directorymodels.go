package models

type TechnicianModel struct {
	ID        uint   `gorm:"primaryKey"`
	ActorID   uint   `gorm:"uniqueIndex;not null"`
	DealerID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:20"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TechnicianModel) TableName() string {
	return "technicians"
}

type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	DealerID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:20;index"`
	Address   string `gorm:"size:500"`
	Area      string `gorm:"size:100"`
	City      string `gorm:"size:100"`
	Pincode   string `gorm:"size:10"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
