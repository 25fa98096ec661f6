package model

import "time"

// Message is a chat entry attached to a job. Only the sender may read
// it individually or delete it.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	SenderID  uint      `json:"sender_id" gorm:"not null;index"`
	JobID     uint      `json:"job_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Sender *User `json:"-" gorm:"foreignKey:SenderID"`
	Job    *Job  `json:"-" gorm:"foreignKey:JobID"`
}
