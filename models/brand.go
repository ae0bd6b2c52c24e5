package models

import "time"

type Brand struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Logo      string    `gorm:"not null" json:"logo"` // stored filename under the uploads dir
	CreatedAt time.Time `json:"createdAt"`
}
