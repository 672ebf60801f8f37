package government

import (
	"county-portal-api/internal/auth"
	"county-portal-api/internal/event"
	"county-portal-api/internal/hierarchy"
	"county-portal-api/internal/util"
)

var leadershipRoles = map[string]bool{
	auth.RoleSheriff:        true,
	auth.RoleDeputy:         true,
	auth.RoleLordLieutenant: true,
}

type DistrictNode struct {
	DistrictCouncil
	Parishes []ParishCouncil `json:"parishes"`
}

type CountyNode struct {
	CountyCouncil
	Districts []DistrictNode `json:"districts"`
}

// Overview is the county government page. Every district and parish is reachable either
// through the tree or through an unassigned list.
type Overview struct {
	County              string          `json:"county"`
	Leadership          []auth.User     `json:"leadership"`
	CommunityVolunteers []auth.User     `json:"community_volunteers"`
	CommunityEvents     []event.Event   `json:"community_events"`
	CountyCouncils      []CountyNode    `json:"county_councils"`
	UnassignedDistricts []DistrictNode  `json:"unassigned_districts"`
	UnassignedParishes  []ParishCouncil `json:"unassigned_parishes"`
	Totals              Totals          `json:"totals"`
}

type Totals struct {
	CountyCouncils   int `json:"county_councils"`
	DistrictCouncils int `json:"district_councils"`
	ParishCouncils   int `json:"parish_councils"`
}

// buildOverview sorts councils by name and nests parishes under districts under counties.
func buildOverview(county string, users []auth.User, events []event.Event,
	counties []CountyCouncil, districts []DistrictCouncil, parishes []ParishCouncil) *Overview {

	util.SortNatural(counties, func(c CountyCouncil) string { return c.Name })
	util.SortNatural(districts, func(d DistrictCouncil) string { return d.Name })
	util.SortNatural(parishes, func(p ParishCouncil) string { return p.Name })

	byDistrict := hierarchy.Build(districts, parishes,
		func(d DistrictCouncil) uint { return d.ID },
		func(p ParishCouncil) *uint { return p.DistrictCouncilID },
	)
	nodes := make([]DistrictNode, 0, len(byDistrict.Groups))
	for _, g := range byDistrict.Groups {
		nodes = append(nodes, DistrictNode{DistrictCouncil: g.Parent, Parishes: g.Children})
	}

	byCounty := hierarchy.Build(counties, nodes,
		func(c CountyCouncil) uint { return c.ID },
		func(d DistrictNode) *uint { return d.CountyCouncilID },
	)

	ov := &Overview{
		County:              county,
		Leadership:          []auth.User{},
		CommunityVolunteers: []auth.User{},
		CommunityEvents:     events,
		CountyCouncils:      make([]CountyNode, 0, len(byCounty.Groups)),
		UnassignedDistricts: byCounty.Unassigned,
		UnassignedParishes:  byDistrict.Unassigned,
		Totals: Totals{
			CountyCouncils:   len(counties),
			DistrictCouncils: len(districts),
			ParishCouncils:   len(parishes),
		},
	}
	for _, g := range byCounty.Groups {
		ov.CountyCouncils = append(ov.CountyCouncils, CountyNode{CountyCouncil: g.Parent, Districts: g.Children})
	}

	for _, u := range users {
		switch {
		case leadershipRoles[u.Role]:
			ov.Leadership = append(ov.Leadership, u)
		case u.Role == auth.RoleCitizen:
			ov.CommunityVolunteers = append(ov.CommunityVolunteers, u)
		}
	}
	return ov
}
