package model

import "time"

// StorageEntryModel represents the storage_entries table holding one serialized value per key.
type StorageEntryModel struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StorageEntryModel.
func (StorageEntryModel) TableName() string {
	return "storage_entries"
}
