package event

import (
	"context"
	"errors"
	"strings"

	"county-portal-api/internal/access"
	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/listing"
	"county-portal-api/internal/metrics"

	"gorm.io/gorm"
)

var ErrEventFull = errors.New("this event has reached its attendee limit")

type EventService struct {
	DB *gorm.DB
}

func (s *EventService) repo() *entity.Repository[Event] {
	return entity.NewRepository[Event](s.DB)
}

// List returns a county's events, newest date first, narrowed by category and a title search.
func (s *EventService) List(ctx context.Context, f ListFilter) ([]Event, error) {
	events, err := s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": f.County},
		Sort:   "-date",
	})
	if err != nil {
		return nil, err
	}

	return listing.Filter(events, f.Category, f.Search,
		func(e Event) string { return e.Category },
		func(e Event) string { return e.Title },
	), nil
}

func (s *EventService) Get(ctx context.Context, id uint) (*Event, error) {
	return s.repo().Get(ctx, id)
}

// Detail loads an event with its attendance summary for caller, who may be nil.
func (s *EventService) Detail(ctx context.Context, id uint, caller *auth.Identity) (*EventDetail, error) {
	ev, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.attendeeCount(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	detail := &EventDetail{
		Event:             *ev,
		AttendeeCount:     count,
		CanModify:         access.CanModify(caller, ev.CreatedBy),
		GoogleCalendarURL: GoogleCalendarURL(ev),
	}

	if caller != nil {
		rsvp, err := s.findRSVP(s.DB.WithContext(ctx), id, caller.ID)
		if err != nil {
			return nil, err
		}
		detail.UserRSVP = rsvp
	}
	return detail, nil
}

// Create stores a new event attributed to caller. county is used when the request names none.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest, caller *auth.Identity, county string) (*Event, error) {
	if strings.TrimSpace(req.County) != "" {
		county = strings.TrimSpace(req.County)
	}
	ev := Event{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Category:       req.Category,
		Date:           req.Date,
		Location:       strings.TrimSpace(req.Location),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Organizer:      req.Organizer,
		AttendeesLimit: req.AttendeesLimit,
		Requirements:   req.Requirements,
		County:         county,
		CreatedBy:      caller.Email,
	}
	if err := s.repo().Create(ctx, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) Update(ctx context.Context, id uint, patch *Event, columns []string, caller *auth.Identity) (*Event, error) {
	ev, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(caller, ev.CreatedBy); err != nil {
		return nil, err
	}
	return s.repo().Patch(ctx, id, patch, columns)
}

// Delete removes the event and its RSVPs.
func (s *EventService) Delete(ctx context.Context, id uint, caller *auth.Identity) (*Event, error) {
	ev, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(caller, ev.CreatedBy); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&EventAttendance{}).Error; err != nil {
			return err
		}
		return entity.NewRepository[Event](tx).Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// ToggleRSVP flips caller's attendance: no record creates one, an existing record is removed.
func (s *EventService) ToggleRSVP(ctx context.Context, eventID uint, caller *auth.Identity) (*RSVPResult, error) {
	ev, err := s.repo().Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := &RSVPResult{}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.findRSVP(tx, eventID, caller.ID)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := tx.Delete(&EventAttendance{}, existing.ID).Error; err != nil {
				return err
			}
			result.Attending = false
		} else {
			if ev.AttendeesLimit != nil {
				count, err := s.attendeeCount(tx, eventID)
				if err != nil {
					return err
				}
				if count >= int64(*ev.AttendeesLimit) {
					return ErrEventFull
				}
			}
			rsvp := EventAttendance{
				EventID:   eventID,
				UserID:    caller.ID,
				UserEmail: caller.Email,
				Status:    StatusAttending,
			}
			if err := entity.NewRepository[EventAttendance](tx).Create(ctx, &rsvp); err != nil {
				return err
			}
			result.Attending = true
		}

		result.AttendeeCount, err = s.attendeeCount(tx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Attending {
		metrics.RecordRSVP("attend")
	} else {
		metrics.RecordRSVP("cancel")
	}
	return result, nil
}

// Recent returns the newest-created events of a county.
func (s *EventService) Recent(ctx context.Context, county string, limit int) ([]Event, error) {
	return s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": county},
		Sort:   "-created_at",
		Limit:  limit,
	})
}

// CommunityService returns a county's community_service events, newest date first.
func (s *EventService) CommunityService(ctx context.Context, county string) ([]Event, error) {
	return s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": county, "category": CategoryCommunityService},
		Sort:   "-date",
	})
}

func (s *EventService) attendeeCount(tx *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := tx.Model(&EventAttendance{}).
		Where("event_id = ? AND status = ?", eventID, StatusAttending).
		Count(&count).Error
	return count, err
}

func (s *EventService) findRSVP(tx *gorm.DB, eventID, userID uint) (*EventAttendance, error) {
	var rows []EventAttendance
	if err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
