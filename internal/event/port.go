package event

import (
	"context"

	"county-portal-api/internal/auth"
)

type EventServiceAPI interface {
	List(ctx context.Context, f ListFilter) ([]Event, error)
	Get(ctx context.Context, id uint) (*Event, error)
	Detail(ctx context.Context, id uint, caller *auth.Identity) (*EventDetail, error)
	Create(ctx context.Context, req CreateEventRequest, caller *auth.Identity, county string) (*Event, error)
	Update(ctx context.Context, id uint, patch *Event, columns []string, caller *auth.Identity) (*Event, error)
	Delete(ctx context.Context, id uint, caller *auth.Identity) (*Event, error)
	ToggleRSVP(ctx context.Context, eventID uint, caller *auth.Identity) (*RSVPResult, error)
}

var _ EventServiceAPI = (*EventService)(nil)
