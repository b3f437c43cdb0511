package model

import "time"

// ClientStateModel is the GORM-specific struct for the 'client_state' table.
// Each row holds one opaque value of the durable client store.
type ClientStateModel struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ClientStateModel) TableName() string {
	return "client_state"
}
