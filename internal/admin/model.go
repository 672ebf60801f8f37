package admin

const (
	KindEvents            = "events"
	KindVolunteerServices = "volunteer_services"
)

type BackfillRequest struct {
	Kind string `json:"kind" binding:"required,oneof=events volunteer_services"`
}

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

var exportHeader = []string{
	"kind", "id", "name", "county", "headquarters", "population_served", "website",
	"established", "leader", "parent_id", "type", "precept",
}
