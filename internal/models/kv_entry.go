package models

import "time"

// KVEntry is one row of the key-value persistence surface.
type KVEntry struct {
	Key       string    `json:"key" gorm:"primaryKey;column:key;type:varchar(255)"`
	Value     string    `json:"value" gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (KVEntry) TableName() string { return "kv_entries" }
