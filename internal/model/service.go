package model

import "time"

// Service is a marketplace listing offered by a subcontractor.
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Price       int       `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"size:100;index"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:512"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner *User `json:"-" gorm:"foreignKey:OwnerID"`
}
