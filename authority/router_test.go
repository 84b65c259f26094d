package authority

import (
	"testing"

	"saferoute/types"
)

func TestRoute_KnownTypes(t *testing.T) {
	tests := []struct {
		incidentType types.IncidentType
		want         []string
	}{
		{types.Construction, []string{types.AuthorityMunicipal}},
		{types.Traffic, []string{types.AuthorityPolice}},
		{types.Accident, []string{types.AuthorityPolice, types.AuthorityMedical, types.AuthorityFire}},
		{types.TreeFall, []string{types.AuthorityMunicipal, types.AuthorityFire}},
		{types.PowerIssue, []string{types.AuthorityElectricity, types.AuthorityMunicipal}},
		{types.Violence, []string{types.AuthorityPolice, types.AuthorityMedical}},
		{types.Flood, []string{types.AuthorityMunicipal, types.AuthorityFire, types.AuthorityRescue}},
		{types.Fire, []string{types.AuthorityFire, types.AuthorityPolice, types.AuthorityMedical}},
	}

	for _, tt := range tests {
		t.Run(string(tt.incidentType), func(t *testing.T) {
			plan := Route(tt.incidentType)
			if len(plan) != len(tt.want) {
				t.Fatalf("plan has %d entries, want %d: %+v", len(plan), len(tt.want), plan)
			}
			for i, authority := range tt.want {
				if plan[i].Authority != authority {
					t.Errorf("plan[%d] = %q, want %q (order is significant)", i, plan[i].Authority, authority)
				}
				if plan[i].Endpoint == "" {
					t.Errorf("plan[%d] (%s) has no endpoint configured", i, authority)
				}
			}
		})
	}
}

func TestRoute_UnmappedTypeYieldsEmptyPlan(t *testing.T) {
	plan := Route(types.IncidentType("pothole"))
	if len(plan) != 0 {
		t.Errorf("unmapped type produced a plan: %+v", plan)
	}
}

func TestAuthorities_NamesOnly(t *testing.T) {
	names := Authorities(types.Accident)
	want := []string{types.AuthorityPolice, types.AuthorityMedical, types.AuthorityFire}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
