package model

import "time"

// DocumentModel mirrors the 'documents' table.
type DocumentModel struct {
	ID         string    `gorm:"type:varchar(64);primaryKey"`
	Position   int       `gorm:"not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	UploadedAt time.Time `gorm:"type:date;not null"`
	URL        string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// All returns every model the store migrates, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&UnitModel{},
		&BillModel{},
		&MaintenanceRequestModel{},
		&LeaseModel{},
		&LeaseTermModel{},
		&DocumentModel{},
	}
}
