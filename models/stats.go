package models

// Stats is the single global counters row, created by the first checkout and
// incremented atomically afterwards. All server instances share it through
// the database.
type Stats struct {
	ID               uint  `gorm:"primaryKey" json:"-"`
	GlobalOrderCount int64 `gorm:"default:0" json:"globalOrderCount"`
}
