// Package report generates the compliance report and dashboard-style
// aggregates layered on top of a scored assessment.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complykit/complykit/internal/schema"
)

// nextStepsLimit caps how many recommendations appear as next steps.
const nextStepsLimit = 3

// ComplianceReport is the shareable summary built from one assessment.
type ComplianceReport struct {
	ID               string                  `json:"id"`
	CompanyName      string                  `json:"company_name"`
	RiskScore        float64                 `json:"risk_score"`
	RiskLevel        schema.RiskLevel        `json:"risk_level"`
	ComplianceStatus schema.ComplianceStatus `json:"compliance_status"`
	ExecutiveSummary string                  `json:"executive_summary"`
	Recommendations  []string                `json:"recommendations"`
	NextSteps        []string                `json:"next_steps"`
	GeneratedAt      time.Time               `json:"generated_at"`
}

// Generate builds a compliance report for the given company from a
// validated assessment report.
func Generate(companyName string, rep *schema.Report) ComplianceReport {
	res := rep.Result
	summary := fmt.Sprintf(
		"Based on the AI compliance assessment, %s has a risk score of %.1f/10.0 and is classified as %s risk according to EU AI Act regulations.",
		companyName, res.RiskScore, res.RiskLevel,
	)

	next := res.Recommendations
	if len(next) > nextStepsLimit {
		next = next[:nextStepsLimit]
	}

	return ComplianceReport{
		ID:               uuid.NewString(),
		CompanyName:      companyName,
		RiskScore:        res.RiskScore,
		RiskLevel:        res.RiskLevel,
		ComplianceStatus: res.ComplianceStatus,
		ExecutiveSummary: summary,
		Recommendations:  res.Recommendations,
		NextSteps:        next,
		GeneratedAt:      time.Now().UTC(),
	}
}

// Stats is the dashboard aggregate over a user's assessment history.
type Stats struct {
	TotalAssessments     int                     `json:"total_assessments"`
	LatestRiskScore      float64                 `json:"latest_risk_score"`
	ComplianceStatus     schema.ComplianceStatus `json:"compliance_status"`
	RecommendationsCount int                     `json:"recommendations_count"`
}

// ComputeStats summarises a set of results. With no assessments the
// status is not_assessed and the numeric fields are zero.
func ComputeStats(results []schema.AssessmentResult) Stats {
	if len(results) == 0 {
		return Stats{ComplianceStatus: schema.StatusNotAssessed}
	}

	latest := results[0]
	for _, r := range results[1:] {
		if r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}

	return Stats{
		TotalAssessments:     len(results),
		LatestRiskScore:      latest.RiskScore,
		ComplianceStatus:     latest.ComplianceStatus,
		RecommendationsCount: len(latest.Recommendations),
	}
}
