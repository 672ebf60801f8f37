package role

import "county-portal-api/internal/auth"

// Role describes one assignable portal role.
type Role struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	// Leadership roles are listed on the county government page.
	Leadership bool `json:"leadership"`
}

var catalog = []Role{
	{Name: auth.RoleCitizen, Label: "Citizen"},
	{Name: auth.RoleDeputy, Label: "Deputy", Leadership: true},
	{Name: auth.RoleSheriff, Label: "Sheriff", Leadership: true},
	{Name: auth.RoleLordLieutenant, Label: "Lord Lieutenant", Leadership: true},
	{Name: auth.RoleCustosRotulum, Label: "Custos Rotulorum"},
	{Name: auth.RoleMedicalOfficer, Label: "Medical Officer"},
	{Name: auth.RoleAdmin, Label: "Administrator"},
}

type AssignRequest struct {
	Role string `json:"role" binding:"required"`
	// County moves the user to another county when set.
	County *string `json:"county"`
}
