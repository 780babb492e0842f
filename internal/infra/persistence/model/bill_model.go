package model

import "time"

// BillModel mirrors the 'bills' table.
type BillModel struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	Position    int       `gorm:"not null;index"`
	UnitID      string    `gorm:"type:varchar(64);not null"`
	ResidentID  string    `gorm:"type:varchar(64);not null;index"`
	Type        string    `gorm:"type:varchar(32);not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	DueDate     time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"type:varchar(32);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"type:date;not null;autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "bills"
}
