package models

import "time"

type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
}
