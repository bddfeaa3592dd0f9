package domain

import (
	"errors"
	"time"
)

// TicketStatus represents the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketPending  TicketStatus = "pending"
	TicketResolved TicketStatus = "resolved"
)

var ErrTicketNotFound = errors.New("ticket not found")

// RequesterInfo identifies the user a ticket was opened by.
type RequesterInfo struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Ticket is a top-level support request record.
type Ticket struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Requester RequesterInfo `json:"requester" bson:"requester"`
	Title     string        `json:"title" bson:"title"`
	Message   string        `json:"message" bson:"message"`
	Status    TicketStatus  `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
