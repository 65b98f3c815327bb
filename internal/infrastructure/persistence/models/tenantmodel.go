package models

type TenantModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:200;not null"`
	ContactEmail   string `gorm:"size:254"`
	LogoURL        string `gorm:"size:500"`
	Currency       string `gorm:"size:3;not null;default:USD"`
	FooterMarkdown string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

type StaffMemberModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:254;uniqueIndex"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StaffMemberModel) TableName() string {
	return "staff_members"
}
