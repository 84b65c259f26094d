package types

// AreaRiskAssessment summarizes incident density around a point. Computed
// from the live incident store, never cached.
type AreaRiskAssessment struct {
	RiskScore       float64  `json:"riskScore"`
	RiskLevel       Severity `json:"riskLevel"`
	PredictedTrend  string   `json:"predictedTrend"`
	Recommendations []string `json:"recommendations"`
	IncidentCount   int      `json:"incidentCount"`
}
