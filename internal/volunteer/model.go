package volunteer

import "time"

var Categories = []string{
	"healthcare",
	"food_assistance",
	"elderly_care",
	"emergency_response",
	"education",
	"community_support",
	"environmental",
	"youth_programs",
}

const StatusPending = "pending"

// Service is a volunteering opportunity run in a county.
type Service struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Category         string    `gorm:"size:50;index" json:"category"`
	Description      string    `gorm:"type:text" json:"description"`
	Coordinator      string    `json:"coordinator"`
	ContactInfo      string    `gorm:"column:contact_info" json:"contact_info"`
	Location         string    `json:"location"`
	Schedule         string    `json:"schedule"`
	VolunteersNeeded int       `gorm:"column:volunteers_needed" json:"volunteers_needed"`
	Requirements     string    `gorm:"type:text" json:"requirements"`
	TrainingProvided bool      `gorm:"column:training_provided" json:"training_provided"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	County           string    `gorm:"size:150;index" json:"county"`
	CreatedBy        string    `gorm:"column:created_by;index" json:"created_by"`
	CreatedAt        time.Time `json:"created_date"`
	UpdatedAt        time.Time `json:"updated_date"`
}

func (Service) TableName() string {
	return "volunteer_services"
}

func (s Service) Creator() string {
	return s.CreatedBy
}

// Application is one person's offer to help with a Service. One per (service, email).
type Application struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID          uint      `gorm:"uniqueIndex:idx_application_service_email;not null" json:"service_id"`
	ServiceName        string    `gorm:"column:service_name" json:"service_name"`
	ApplicantName      string    `gorm:"column:applicant_name" json:"applicant_name"`
	ApplicantEmail     string    `gorm:"column:applicant_email;uniqueIndex:idx_application_service_email;not null" json:"applicant_email"`
	Skills             string    `gorm:"type:text" json:"skills"`
	Availability       string    `json:"availability"`
	Motivation         string    `gorm:"type:text" json:"motivation"`
	PreviousExperience string    `gorm:"column:previous_experience;type:text" json:"previous_experience"`
	References         string    `gorm:"column:applicant_references;type:text" json:"references"`
	County             string    `gorm:"size:150;index" json:"county"`
	Status             string    `gorm:"size:20;default:pending" json:"status"`
	CreatedBy          string    `gorm:"column:created_by" json:"created_by"`
	CreatedAt          time.Time `json:"created_date"`
}

func (Application) TableName() string {
	return "volunteer_applications"
}

type ServiceDetail struct {
	Service
	ApplicationCount int64        `json:"application_count"`
	UserApplication  *Application `json:"user_application"`
	CanModify        bool         `json:"can_modify"`
}

var updatableColumns = map[string]bool{
	"name":              true,
	"category":          true,
	"description":       true,
	"coordinator":       true,
	"contact_info":      true,
	"location":          true,
	"schedule":          true,
	"volunteers_needed": true,
	"requirements":      true,
	"training_provided": true,
	"latitude":          true,
	"longitude":         true,
	"county":            true,
}

type CreateServiceRequest struct {
	Name             string   `json:"name" binding:"required"`
	Category         string   `json:"category" binding:"required,oneof=healthcare food_assistance elderly_care emergency_response education community_support environmental youth_programs"`
	Description      string   `json:"description" binding:"required"`
	Coordinator      string   `json:"coordinator"`
	ContactInfo      string   `json:"contact_info"`
	Location         string   `json:"location"`
	Schedule         string   `json:"schedule"`
	VolunteersNeeded int      `json:"volunteers_needed" binding:"min=0"`
	Requirements     string   `json:"requirements"`
	TrainingProvided bool     `json:"training_provided"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	County           string   `json:"county"`
}

type ApplyRequest struct {
	ApplicantName      string `json:"applicant_name" binding:"required"`
	ApplicantEmail     string `json:"applicant_email" binding:"required,email"`
	Skills             string `json:"skills"`
	Availability       string `json:"availability"`
	Motivation         string `json:"motivation"`
	PreviousExperience string `json:"previous_experience"`
	References         string `json:"references"`
}

type ListFilter struct {
	County   string
	Category string
	Search   string
}
