package laundry

import (
	"strings"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QueryPriority is the triage priority of a contact query
type QueryPriority string

const (
	PriorityLow    QueryPriority = "low"
	PriorityNormal QueryPriority = "normal"
	PriorityHigh   QueryPriority = "high"
)

// IsValid returns true if the priority is a known value
func (p QueryPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// QueryStatus represents the lifecycle state of a contact query
type QueryStatus string

const (
	QueryStatusNew        QueryStatus = "new"
	QueryStatusInProgress QueryStatus = "in_progress"
	QueryStatusResolved   QueryStatus = "resolved"
	QueryStatusClosed     QueryStatus = "closed"
)

// IsValid returns true if the status is a known value
func (s QueryStatus) IsValid() bool {
	switch s {
	case QueryStatusNew, QueryStatusInProgress, QueryStatusResolved, QueryStatusClosed:
		return true
	}
	return false
}

// CanTransitionTo checks whether the status may move to the target
func (s QueryStatus) CanTransitionTo(target QueryStatus) bool {
	transitions := map[QueryStatus][]QueryStatus{
		QueryStatusNew:        {QueryStatusInProgress, QueryStatusClosed},
		QueryStatusInProgress: {QueryStatusResolved, QueryStatusClosed},
		QueryStatusResolved:   {QueryStatusClosed},
		QueryStatusClosed:     {},
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ContactQuery is a question or complaint submitted from the public
// contact form and triaged by operators.
type ContactQuery struct {
	shared.BaseAggregateRoot
	Name       string        `gorm:"type:varchar(100);not null"`
	Email      string        `gorm:"type:varchar(200);not null;index"`
	Subject    string        `gorm:"type:varchar(200);not null"`
	Message    string        `gorm:"type:text;not null"`
	Priority   QueryPriority `gorm:"type:varchar(10);not null;default:'normal'"`
	Status     QueryStatus   `gorm:"type:varchar(20);not null;default:'new'"`
	AssignedTo string        `gorm:"type:varchar(100)"`
	Response   string        `gorm:"type:text"`
	ResolvedAt *time.Time
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ContactQuery) TableName() string {
	return "contact_queries"
}

// NewContactQuery creates a new query from public form input
func NewContactQuery(name, email, subject, message string) (*ContactQuery, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	subject = strings.TrimSpace(subject)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is invalid")
	}
	if subject == "" {
		return nil, shared.NewDomainError("INVALID_SUBJECT", "Subject cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}
	return &ContactQuery{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Subject:           subject,
		Message:           message,
		Priority:          PriorityNormal,
		Status:            QueryStatusNew,
	}, nil
}

// SetPriority re-triages the query. Priority is frozen once the
// query reaches a terminal review state.
func (q *ContactQuery) SetPriority(priority QueryPriority) error {
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_PRIORITY", "Unknown priority")
	}
	if q.Status == QueryStatusResolved || q.Status == QueryStatusClosed {
		return shared.NewDomainError("PRIORITY_FROZEN", "Priority cannot change after the query is resolved or closed")
	}
	q.Priority = priority
	q.Touch()
	q.IncrementVersion()
	return nil
}

// Assign hands the query to an operator. Assigning a new query
// automatically moves it into progress.
func (q *ContactQuery) Assign(operator string) error {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return shared.NewDomainError("INVALID_ASSIGNEE", "Assignee cannot be empty")
	}
	if q.Status == QueryStatusResolved || q.Status == QueryStatusClosed {
		return shared.NewDomainError("INVALID_STATE", "Cannot assign a resolved or closed query")
	}
	q.AssignedTo = operator
	if q.Status == QueryStatusNew {
		q.Status = QueryStatusInProgress
	}
	q.Touch()
	q.IncrementVersion()
	return nil
}

// Resolve records the response and marks the query resolved. A
// response is required.
func (q *ContactQuery) Resolve(response string) error {
	if strings.TrimSpace(response) == "" {
		return shared.NewDomainError("RESPONSE_REQUIRED", "A response is required to resolve a query")
	}
	if !q.Status.CanTransitionTo(QueryStatusResolved) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot resolve a query in status "+string(q.Status))
	}
	q.Response = response
	q.Status = QueryStatusResolved
	now := time.Now()
	q.ResolvedAt = &now
	q.Touch()
	q.IncrementVersion()
	q.AddDomainEvent(NewQueryResolvedEvent(q))
	return nil
}

// Close ends the query's lifecycle
func (q *ContactQuery) Close() error {
	if !q.Status.CanTransitionTo(QueryStatusClosed) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot close a query in status "+string(q.Status))
	}
	q.Status = QueryStatusClosed
	q.Touch()
	q.IncrementVersion()
	return nil
}
