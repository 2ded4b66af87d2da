// Package model contains the GORM persistence models.
package model

import "time"

// RecordModel mirrors the 'records' table: one row per named application
// record, with the record body stored as a JSON document. The table is the
// local equivalent of the key-value storage the household app was born with.
type RecordModel struct {
	Name      string `gorm:"type:varchar(64);primaryKey"`
	Body      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}
