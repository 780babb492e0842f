// Package model holds the GORM persistence models of the postgres store.
package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID       string `gorm:"type:varchar(64);primaryKey"`
	Position int    `gorm:"not null;index"` // Insertion order of the dataset.
	Email    string `gorm:"type:varchar(255);unique;not null"`
	Name     string `gorm:"type:varchar(100)"`
	Role     string `gorm:"type:varchar(32);not null;index"`
	UnitID   string `gorm:"type:varchar(64)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
