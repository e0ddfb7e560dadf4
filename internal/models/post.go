// Package models contains data structures for the application's domain models.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ImageList is an ordered list of image URLs stored as a JSON-encoded text
// column. Order is preserved across a round trip through the database.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(src any) error {
	if src == nil {
		*l = ImageList{}
		return nil
	}
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", src)
	}
}

// Post represents a post owned by exactly one user. UserName is populated
// from a join when listing posts; it is never written.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Images      ImageList `gorm:"type:text" json:"images"`
	UserName    string    `gorm:"->;-:migration" json:"user_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
