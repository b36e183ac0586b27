package domain

import "time"

// SupportTicket is one support request raised in an assessed subscription.
type SupportTicket struct {
	TicketID        string
	Severity        string
	Status          string
	SupportPlan     string
	CreatedDate     time.Time
	ModifiedDate    time.Time
	Title           string
	RelatedResource string
}
