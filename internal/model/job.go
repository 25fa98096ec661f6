package model

import "time"

// JobStatus is the closed set of job states. Unrecognized values are
// rejected at the boundary and never persisted.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Valid reports whether s is one of the known job states.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a piece of work a client has created against a listed service.
// Only the creating client may read or mutate it.
type Job struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Status      JobStatus `json:"status" gorm:"size:50;default:'pending'"`
	ClientID    uint      `json:"client_id" gorm:"not null;index"`
	ServiceID   uint      `json:"service_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Client  *User    `json:"-" gorm:"foreignKey:ClientID"`
	Service *Service `json:"-" gorm:"foreignKey:ServiceID"`
}
