package models

type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:254;index"`
	Phone     string `gorm:"size:50"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
