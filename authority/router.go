package authority

import "saferoute/types"

// routingEntry holds the ordered authority list for an incident type and
// the endpoint each authority is reachable at.
type routingEntry struct {
	authorities []string
	endpoints   map[string]string
}

var routingTable = map[types.IncidentType]routingEntry{
	types.Construction: {
		authorities: []string{types.AuthorityMunicipal},
		endpoints: map[string]string{
			types.AuthorityMunicipal: "https://municipalportal.gov.in/api/report",
		},
	},
	types.Traffic: {
		authorities: []string{types.AuthorityPolice},
		endpoints: map[string]string{
			types.AuthorityPolice: "https://trafficmanagement.gov.in/api/alert",
		},
	},
	types.Accident: {
		authorities: []string{types.AuthorityPolice, types.AuthorityMedical, types.AuthorityFire},
		endpoints: map[string]string{
			types.AuthorityPolice:  "https://policeportal.gov.in/api/emergency",
			types.AuthorityMedical: "https://healthemergency.gov.in/api/ambulance",
			types.AuthorityFire:    "https://fireservices.gov.in/api/incident",
		},
	},
	types.TreeFall: {
		authorities: []string{types.AuthorityMunicipal, types.AuthorityFire},
		endpoints: map[string]string{
			types.AuthorityMunicipal: "https://municipalportal.gov.in/api/report",
			types.AuthorityFire:      "https://fireservices.gov.in/api/hazard",
		},
	},
	types.PowerIssue: {
		authorities: []string{types.AuthorityElectricity, types.AuthorityMunicipal},
		endpoints: map[string]string{
			types.AuthorityElectricity: "https://powerboard.gov.in/api/emergency",
			types.AuthorityMunicipal:   "https://municipalportal.gov.in/api/report",
		},
	},
	types.Violence: {
		authorities: []string{types.AuthorityPolice, types.AuthorityMedical},
		endpoints: map[string]string{
			types.AuthorityPolice:  "https://policeportal.gov.in/api/emergency",
			types.AuthorityMedical: "https://healthemergency.gov.in/api/ambulance",
		},
	},
	types.Flood: {
		authorities: []string{types.AuthorityMunicipal, types.AuthorityFire, types.AuthorityRescue},
		endpoints: map[string]string{
			types.AuthorityMunicipal: "https://disastermanagement.gov.in/api/alert",
			types.AuthorityFire:      "https://fireservices.gov.in/api/rescue",
			types.AuthorityRescue:    "https://ndrf.gov.in/api/deploy",
		},
	},
	types.Fire: {
		authorities: []string{types.AuthorityFire, types.AuthorityPolice, types.AuthorityMedical},
		endpoints: map[string]string{
			types.AuthorityFire:    "https://fireservices.gov.in/api/emergency",
			types.AuthorityPolice:  "https://policeportal.gov.in/api/emergency",
			types.AuthorityMedical: "https://healthemergency.gov.in/api/ambulance",
		},
	},
}

// Route maps an incident type to its notification plan. Unmapped types
// yield an empty plan: "no authorities required" is a valid answer, not
// an error. Authorities with no configured endpoint stay in the plan with
// an empty endpoint so delivery tracking can report them.
func Route(incidentType types.IncidentType) types.NotificationPlan {
	entry, ok := routingTable[incidentType]
	if !ok {
		return types.NotificationPlan{}
	}

	plan := make(types.NotificationPlan, 0, len(entry.authorities))
	for _, auth := range entry.authorities {
		plan = append(plan, types.PlannedNotification{
			Authority: auth,
			Endpoint:  entry.endpoints[auth],
		})
	}
	return plan
}

// Authorities returns just the ordered authority names for a type.
func Authorities(incidentType types.IncidentType) []string {
	plan := Route(incidentType)
	names := make([]string, 0, len(plan))
	for _, p := range plan {
		names = append(names, p.Authority)
	}
	return names
}
