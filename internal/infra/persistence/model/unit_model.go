package model

// UnitModel mirrors the 'units' table.
type UnitModel struct {
	ID         string  `gorm:"type:varchar(64);primaryKey"`
	Position   int     `gorm:"not null;index"`
	Address    string  `gorm:"type:varchar(255);not null"`
	City       string  `gorm:"type:varchar(100)"`
	State      string  `gorm:"type:varchar(32)"`
	ZipCode    string  `gorm:"type:varchar(16)"`
	Bedrooms   int     `gorm:"not null"`
	Bathrooms  int     `gorm:"not null"`
	Rent       float64 `gorm:"type:numeric(12,2);not null"`
	Status     string  `gorm:"type:varchar(32);not null"`
	ResidentID *string `gorm:"type:varchar(64);index"`
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}
