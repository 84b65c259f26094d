package triage

import (
	"context"
	"log"

	"saferoute/authority"
	"saferoute/llm"
	"saferoute/types"
)

const ruleConfidence = 0.85

// Analyze runs the full classification pipeline for one report: the LLM
// override when one can be produced, the deterministic rule chain
// otherwise. It is one or the other wholesale, never a field-by-field
// merge, so severity and confidence always come from the same source.
func Analyze(ctx context.Context, classifier llm.Classifier, report types.IncidentReport) types.TriageResult {
	result := types.TriageResult{
		Classification:    report.Type,
		EstimatedDuration: EstimateDuration(report.Type),
	}

	if override := classifier.TryClassify(ctx, report.Type, report.Description); override != nil {
		log.Printf("Using LLM classification for %s report (severity %s)", report.Type, override.Severity)
		result.Severity = override.Severity
		result.Confidence = override.Confidence
		result.Suggestions = override.SuggestedAction
		result.EstimatedPeople = override.EstimatedPeople
		result.Authorities = override.Authorities
	} else {
		result.Severity = Classify(report.Type, report.Description)
		result.Confidence = ruleConfidence
		result.Suggestions = Suggestions(report.Type, result.Severity)
		result.EstimatedPeople = EstimatePeople(report.Description)
		result.Authorities = authority.Authorities(report.Type)
	}

	result.RiskScore = RiskScore(result.Severity, report.Description, report.HasPhotos, report.HasVideo)
	result.EmergencyDetected = result.Severity == types.Critical

	return result
}
