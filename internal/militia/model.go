package militia

import "time"

const StatusPending = "pending"

type Application struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicantName  string    `gorm:"column:applicant_name" json:"applicant_name"`
	ApplicantEmail string    `gorm:"column:applicant_email;index" json:"applicant_email"`
	Phone          string    `json:"phone"`
	Experience     string    `gorm:"type:text" json:"experience"`
	Motivation     string    `gorm:"type:text" json:"motivation"`
	Availability   string    `json:"availability"`
	County         string    `gorm:"size:150;index" json:"county"`
	Status         string    `gorm:"size:20;default:pending" json:"status"`
	CreatedBy      string    `gorm:"column:created_by;index" json:"created_by"`
	CreatedAt      time.Time `json:"created_date"`
}

func (Application) TableName() string {
	return "militia_applications"
}

type ApplyRequest struct {
	ApplicantName  string `json:"applicant_name" binding:"required"`
	ApplicantEmail string `json:"applicant_email" binding:"required,email"`
	Phone          string `json:"phone"`
	Experience     string `json:"experience"`
	Motivation     string `json:"motivation" binding:"required"`
	Availability   string `json:"availability"`
	County         string `json:"county"`
}
