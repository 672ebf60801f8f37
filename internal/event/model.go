package event

import "time"

const (
	CategoryCommunityService  = "community_service"
	CategoryMedicalOutreach   = "medical_outreach"
	CategoryCulturalHeritage  = "cultural_heritage"
	CategoryNetworking        = "networking"
	CategoryEmergencyResponse = "emergency_response"
)

var Categories = []string{
	CategoryCommunityService,
	CategoryMedicalOutreach,
	CategoryCulturalHeritage,
	CategoryNetworking,
	CategoryEmergencyResponse,
}

const StatusAttending = "attending"

type Event struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Category       string    `gorm:"size:50;index" json:"category"`
	Date           time.Time `gorm:"index" json:"date"`
	Location       string    `json:"location"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Organizer      string    `json:"organizer"`
	AttendeesLimit *int      `gorm:"column:attendees_limit" json:"attendees_limit"`
	Requirements   string    `gorm:"type:text" json:"requirements"`
	County         string    `gorm:"size:150;index" json:"county"`
	CreatedBy      string    `gorm:"column:created_by;index" json:"created_by"`
	CreatedAt      time.Time `json:"created_date"`
	UpdatedAt      time.Time `json:"updated_date"`
}

func (Event) TableName() string {
	return "events"
}

func (e Event) Creator() string {
	return e.CreatedBy
}

// EventAttendance is a user's RSVP. One row per (event, user).
type EventAttendance struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID   uint      `gorm:"uniqueIndex:idx_attendance_event_user;not null" json:"event_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_attendance_event_user;not null" json:"user_id"`
	UserEmail string    `json:"user_email"`
	Status    string    `gorm:"size:20;default:attending" json:"status"`
	CreatedAt time.Time `json:"created_date"`
}

func (EventAttendance) TableName() string {
	return "event_attendance"
}

// EventDetail is an event as seen by one caller.
type EventDetail struct {
	Event
	AttendeeCount     int64            `json:"attendee_count"`
	UserRSVP          *EventAttendance `json:"user_rsvp"`
	CanModify         bool             `json:"can_modify"`
	GoogleCalendarURL string           `json:"google_calendar_url"`
}

type RSVPResult struct {
	Attending     bool  `json:"attending"`
	AttendeeCount int64 `json:"attendee_count"`
}

var updatableColumns = map[string]bool{
	"title":           true,
	"description":     true,
	"category":        true,
	"date":            true,
	"location":        true,
	"latitude":        true,
	"longitude":       true,
	"organizer":       true,
	"attendees_limit": true,
	"requirements":    true,
	"county":          true,
}

type CreateEventRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Category       string    `json:"category" binding:"required,oneof=community_service medical_outreach cultural_heritage networking emergency_response"`
	Date           time.Time `json:"date" binding:"required"`
	Location       string    `json:"location"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Organizer      string    `json:"organizer"`
	AttendeesLimit *int      `json:"attendees_limit" binding:"omitempty,min=1"`
	Requirements   string    `json:"requirements"`
	County         string    `json:"county"`
}

// ListFilter narrows a county's events. Category "all" or empty keeps every category.
type ListFilter struct {
	County   string
	Category string
	Search   string
}
