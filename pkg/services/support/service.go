package support

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/support/armsupport"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// lookbackMonths bounds how far back tickets are fetched.
const lookbackMonths = 3

// Service lists the support tickets opened recently in the assessed
// subscriptions.
type Service interface {
	Tickets(ctx context.Context, subscriptionIDs []string) ([]domain.SupportTicket, error)
}

type ticketLister interface {
	ListTickets(ctx context.Context, subscriptionID string, since time.Time) ([]*armsupport.TicketDetails, error)
}

type service struct {
	tickets ticketLister
}

func NewService(cred azcore.TokenCredential) Service {
	return &service{tickets: &azureTickets{cred: cred}}
}

func (s *service) Tickets(ctx context.Context, subscriptionIDs []string) ([]domain.SupportTicket, error) {
	since := time.Now().UTC().AddDate(0, -lookbackMonths, 0)
	var tickets []domain.SupportTicket
	for _, subscriptionID := range subscriptionIDs {
		items, err := s.tickets.ListTickets(ctx, subscriptionID, since)
		if err != nil {
			return nil, fmt.Errorf("list support tickets for %s: %w", subscriptionID, err)
		}
		for _, item := range items {
			if ticket, ok := normalizeTicket(item); ok {
				tickets = append(tickets, ticket)
			}
		}
	}
	return tickets, nil
}

func normalizeTicket(item *armsupport.TicketDetails) (domain.SupportTicket, bool) {
	if item == nil || item.Properties == nil {
		return domain.SupportTicket{}, false
	}
	props := item.Properties

	ticket := domain.SupportTicket{}
	if props.SupportTicketID != nil {
		ticket.TicketID = *props.SupportTicketID
	}
	if props.Severity != nil {
		ticket.Severity = string(*props.Severity)
	}
	if props.Status != nil {
		ticket.Status = *props.Status
	}
	if props.SupportPlanType != nil {
		ticket.SupportPlan = *props.SupportPlanType
	}
	if props.CreatedDate != nil {
		ticket.CreatedDate = *props.CreatedDate
	}
	if props.ModifiedDate != nil {
		ticket.ModifiedDate = *props.ModifiedDate
	}
	if props.Title != nil {
		ticket.Title = *props.Title
	}
	if props.TechnicalTicketDetails != nil && props.TechnicalTicketDetails.ResourceID != nil {
		ticket.RelatedResource = *props.TechnicalTicketDetails.ResourceID
	}
	return ticket, true
}

type azureTickets struct {
	cred azcore.TokenCredential
}

func (a *azureTickets) ListTickets(ctx context.Context, subscriptionID string, since time.Time) ([]*armsupport.TicketDetails, error) {
	client, err := armsupport.NewTicketsClient(subscriptionID, a.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create support client: %w", err)
	}

	var items []*armsupport.TicketDetails
	pager := client.NewListPager(&armsupport.TicketsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("createdDate ge %s", since.Format(time.RFC3339))),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("page support tickets: %w", err)
		}
		items = append(items, page.Value...)
	}
	return items, nil
}
