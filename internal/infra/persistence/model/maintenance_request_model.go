package model

import "time"

// MaintenanceRequestModel mirrors the 'maintenance_requests' table.
type MaintenanceRequestModel struct {
	ID          string     `gorm:"type:varchar(64);primaryKey"`
	Position    int        `gorm:"not null;index"`
	UnitID      string     `gorm:"type:varchar(64);not null"`
	ResidentID  string     `gorm:"type:varchar(64);not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Priority    string     `gorm:"type:varchar(32);not null"`
	Status      string     `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time  `gorm:"type:date;not null;autoCreateTime:false"`
	CompletedAt *time.Time `gorm:"type:date"`
	AssignedTo  string     `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceRequestModel) TableName() string {
	return "maintenance_requests"
}
