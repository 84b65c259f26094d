package types

// IncidentType categorizes a reported event.
type IncidentType string

const (
	Construction IncidentType = "construction"
	Traffic      IncidentType = "traffic"
	Accident     IncidentType = "accident"
	TreeFall     IncidentType = "tree_fall"
	PowerIssue   IncidentType = "power_issue"
	Violence     IncidentType = "violence"
	Flood        IncidentType = "flood"
	Fire         IncidentType = "fire"
)

type Severity string

const (
	Low      Severity = "LOW"
	Medium   Severity = "MEDIUM"
	High     Severity = "HIGH"
	Critical Severity = "CRITICAL"
)

// severityRank gives the total order used for escalation. Unknown values
// rank below LOW so a bad input can never out-escalate a real level.
var severityRank = map[Severity]int{
	Low:      0,
	Medium:   1,
	High:     2,
	Critical: 3,
}

// Rank returns the position of s in the LOW..CRITICAL order, -1 if unknown.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// MaxSeverity returns the higher of the two levels. Escalation only ever
// moves up, so classification layers call this instead of assigning directly.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
	StatusExpired  Status = "expired"
)

// GeoPoint is a lat/lng pair. Zero value means "no coordinates": real
// reports never sit at exactly (0,0) in the ocean off West Africa.
type GeoPoint struct {
	Lat     float64 `firestore:"lat" json:"lat"`
	Lng     float64 `firestore:"lng" json:"lng"`
	Address string  `firestore:"address,omitempty" json:"address,omitempty"`
}

func (p GeoPoint) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// IncidentReport is the immutable input to triage, as received at the API
// boundary. The engine never mutates it.
type IncidentReport struct {
	Type        IncidentType `json:"type"`
	Description string       `json:"description"`
	Location    *GeoPoint    `json:"location,omitempty"`
	HasPhotos   bool         `json:"hasPhotos"`
	HasVideo    bool         `json:"hasVideo"`
	HasVoice    bool         `json:"hasVoice"`
	TimeOfDay   string       `json:"timeOfDay,omitempty"`
}

// TriageResult is produced once per report and never mutated. Re-triage
// produces a fresh value.
type TriageResult struct {
	Classification    IncidentType `json:"classification"`
	Confidence        float64      `json:"confidence"`
	Severity          Severity     `json:"severity"`
	RiskScore         float64      `json:"riskScore"`
	Suggestions       []string     `json:"suggestions"`
	EmergencyDetected bool         `json:"emergencyDetected"`
	EstimatedPeople   *int         `json:"estimatedPeople,omitempty"`
	EstimatedDuration string       `json:"estimatedDuration,omitempty"`
	Authorities       []string     `json:"authoritiesToNotify"`
}

// IncidentData is the persisted form of an incident in Firestore.
type IncidentData struct {
	ID           string       `firestore:"-" json:"id"`
	Type         IncidentType `firestore:"type" json:"type"`
	Description  string       `firestore:"description" json:"description"`
	Severity     Severity     `firestore:"severity" json:"severity"`
	Status       Status       `firestore:"status" json:"status"`
	Location     GeoPoint     `firestore:"location" json:"location"`
	ReporterID   string       `firestore:"reporterId,omitempty" json:"reporterId,omitempty"`
	ReporterName string       `firestore:"reporterName,omitempty" json:"reporterName,omitempty"`
	HasPhotos    bool         `firestore:"hasPhotos" json:"hasPhotos"`
	HasVideo     bool         `firestore:"hasVideo" json:"hasVideo"`
	HasVoice     bool         `firestore:"hasVoice" json:"hasVoice"`
	IsEmergency  bool         `firestore:"isEmergency" json:"isEmergency"`
	SosID        string       `firestore:"sosId,omitempty" json:"sosId,omitempty"`

	// Triage snapshot taken at report time.
	RiskScore         float64  `firestore:"riskScore" json:"riskScore"`
	Suggestions       []string `firestore:"suggestions,omitempty" json:"suggestions,omitempty"`
	EstimatedDuration string   `firestore:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"`

	// Which authorities were notified and how delivery went.
	AuthorityLog map[string]NotificationOutcome `firestore:"authorityLog,omitempty" json:"authorityLog,omitempty"`

	ReportedAt string `firestore:"reportedAt" json:"reportedAt"`
	ResolvedAt string `firestore:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	ResolvedBy string `firestore:"resolvedBy,omitempty" json:"resolvedBy,omitempty"`
	Notes      string `firestore:"notes,omitempty" json:"notes,omitempty"`
}

// Coordinates implements geo.Locatable.
func (i IncidentData) Coordinates() (float64, float64, bool) {
	if i.Location.IsZero() {
		return 0, 0, false
	}
	return i.Location.Lat, i.Location.Lng, true
}
