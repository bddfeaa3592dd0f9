package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already taken")
var ErrEmailTaken = errors.New("email already taken")
var ErrCPFTaken = errors.New("cpf already registered")
var ErrInvalidCPF = errors.New("invalid cpf")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// TicketEntry is a ticket embedded in the owning user's document. Its
// lifecycle is tied to the user; top-level Ticket records are referenced
// by ID instead.
type TicketEntry struct {
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ContractEntry is a contract embedded in the owning user's document.
// FileID points at the stored blob; FileHash is the SHA-256 of the bytes
// at upload time, checked again on download.
type ContractEntry struct {
	ID       string    `json:"id" bson:"id"`
	Name     string    `json:"name" bson:"name"`
	Value    float64   `json:"value" bson:"value"`
	DueDate  time.Time `json:"due_date" bson:"due_date"`
	Status   string    `json:"status" bson:"status"`
	FileID   string    `json:"file_id" bson:"file_id"`
	FileHash string    `json:"file_hash" bson:"file_hash"`
}

// Subscription links a user to a top-level service record they requested
// or were assigned. A back-reference, never exclusive ownership.
type Subscription struct {
	ServiceID string `json:"service_id" bson:"service_id"`
	Status    string `json:"status" bson:"status"`
}

// User models an account in the system: an admin, an agency employee, or
// a client of the agency.
type User struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	CPF           string          `json:"cpf"`
	Role          string          `json:"role"`
	Title         string          `json:"title,omitempty"`
	PasswordHash  string          `json:"-"`
	Status        string          `json:"status"`
	Tickets       []TicketEntry   `json:"tickets,omitempty"`
	Contracts     []ContractEntry `json:"contracts,omitempty"`
	Subscriptions []Subscription  `json:"subscriptions,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
