// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The mobile number doubles as the
// login handle and must be unique. PostCount is a denormalized count of the
// user's posts; it is only ever mutated inside the same transaction as the
// post insert/delete it reflects.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	MobileNumber string    `gorm:"unique;not null" json:"mobile_number"`
	Address      string    `json:"address"`
	PostCount    int       `gorm:"not null;default:0" json:"post_count"`
	Password     string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Posts        []Post    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}
