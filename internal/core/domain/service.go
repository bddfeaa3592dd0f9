package domain

import (
	"errors"
	"time"
)

// ServiceStatus represents the lifecycle state of a service record.
type ServiceStatus string

const (
	ServiceActive     ServiceStatus = "active"
	ServiceAccepted   ServiceStatus = "accepted"
	ServiceInProgress ServiceStatus = "in_progress"
	ServiceDone       ServiceStatus = "done"
	ServiceCancelled  ServiceStatus = "cancelled"
)

// serviceTransitions defines the allowed state machine transitions.
var serviceTransitions = map[ServiceStatus][]ServiceStatus{
	ServiceActive:     {ServiceAccepted, ServiceCancelled},
	ServiceAccepted:   {ServiceInProgress, ServiceCancelled},
	ServiceInProgress: {ServiceDone, ServiceCancelled},
}

var ErrServiceNotFound = errors.New("service not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s ServiceStatus) CanTransitionTo(next ServiceStatus) bool {
	for _, allowed := range serviceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ClientInfo identifies the client a service belongs to.
type ClientInfo struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// MediaRef points at an image stored in the blob store.
type MediaRef struct {
	FileID  string `json:"file_id" bson:"file_id"`
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`
}

// Service is a piece of work the agency delivers for a client.
type Service struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Client       ClientInfo    `json:"client" bson:"client"`
	Name         string        `json:"name" bson:"name"`
	Type         string        `json:"type" bson:"type"`
	Description  string        `json:"description" bson:"description"`
	DeliveryDate time.Time     `json:"delivery_date" bson:"delivery_date"`
	Media        []MediaRef    `json:"media,omitempty" bson:"media,omitempty"`
	Status       ServiceStatus `json:"status" bson:"status"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
}
