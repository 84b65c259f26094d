package types

// Authority identifiers eligible to receive notifications.
const (
	AuthorityPolice      = "POLICE"
	AuthorityMedical     = "MEDICAL"
	AuthorityFire        = "FIRE"
	AuthorityMunicipal   = "MUNICIPAL"
	AuthorityElectricity = "ELECTRICITY"
	AuthorityRescue      = "RESCUE"
)

// PlannedNotification pairs an authority with its endpoint. An empty
// Endpoint means the authority is required but has nothing configured;
// the dispatcher records that instead of dropping the entry.
type PlannedNotification struct {
	Authority string
	Endpoint  string
}

// NotificationPlan is the ordered authority set for one incident type.
// Order matters for display only, dispatch is concurrent.
type NotificationPlan []PlannedNotification

type OutcomeStatus string

const (
	OutcomeSuccess    OutcomeStatus = "success"
	OutcomeFailed     OutcomeStatus = "failed"
	OutcomeError      OutcomeStatus = "error"
	OutcomeNoEndpoint OutcomeStatus = "no_endpoint"
)

// NotificationOutcome is the delivery result for a single authority.
type NotificationOutcome struct {
	Status    OutcomeStatus `firestore:"status" json:"status"`
	Code      int           `firestore:"code,omitempty" json:"code,omitempty"`
	Error     string        `firestore:"error,omitempty" json:"error,omitempty"`
	Timestamp string        `firestore:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// NotificationReport maps authority -> outcome. Complete by construction:
// one entry per planned authority, written exactly once.
type NotificationReport map[string]NotificationOutcome

// Successful counts delivered notifications.
func (r NotificationReport) Successful() int {
	n := 0
	for _, o := range r {
		if o.Status == OutcomeSuccess {
			n++
		}
	}
	return n
}

// NotificationPayload is the body POSTed to every authority endpoint.
type NotificationPayload struct {
	IncidentType IncidentType `json:"incident_type"`
	Severity     Severity     `json:"severity"`
	Location     GeoPoint     `json:"location"`
	Description  string       `json:"description"`
	Timestamp    string       `json:"timestamp"`
	Source       string       `json:"source"`
}
