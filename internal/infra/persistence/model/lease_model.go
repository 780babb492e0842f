package model

import "time"

// LeaseModel mirrors the 'leases' table. Clauses live in 'lease_terms'.
type LeaseModel struct {
	ID         string           `gorm:"type:varchar(64);primaryKey"`
	Position   int              `gorm:"not null;index"`
	UnitID     string           `gorm:"type:varchar(64);not null"`
	ResidentID string           `gorm:"type:varchar(64);not null;index"`
	StartDate  time.Time        `gorm:"type:date;not null"`
	EndDate    time.Time        `gorm:"type:date;not null"`
	Rent       float64          `gorm:"type:numeric(12,2);not null"`
	Deposit    float64          `gorm:"type:numeric(12,2);not null"`
	Status     string           `gorm:"type:varchar(32);not null"`
	Terms      []LeaseTermModel `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LeaseModel) TableName() string {
	return "leases"
}

// LeaseTermModel mirrors the 'lease_terms' table. Position keeps clause order.
type LeaseTermModel struct {
	LeaseID  string `gorm:"type:varchar(64);primaryKey"`
	Position int    `gorm:"primaryKey"`
	Clause   string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (LeaseTermModel) TableName() string {
	return "lease_terms"
}
