// Package validate parses and checks stored assessment reports before
// they are reused by the report and compare commands. A saved report
// is external input here: files get edited, truncated, and produced by
// older versions.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/complykit/complykit/internal/schema"
)

// Parse unmarshals a stored report and validates its structure.
func Parse(data []byte) (*schema.Report, error) {
	var report schema.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	if err := validateReport(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

func validateReport(r *schema.Report) error {
	if r.Tool == "" {
		return fmt.Errorf("report: tool field is required")
	}
	if r.Result.RiskScore < 0 || r.Result.RiskScore > 10 {
		return fmt.Errorf("report: risk_score %g outside [0.0, 10.0]", r.Result.RiskScore)
	}
	if !schema.IsValidRiskLevel(r.Result.RiskLevel) {
		return fmt.Errorf("report: invalid risk_level %q (must be minimal, limited, high, or unacceptable)", r.Result.RiskLevel)
	}
	if !schema.IsValidStatus(r.Result.ComplianceStatus) {
		return fmt.Errorf("report: invalid compliance_status %q", r.Result.ComplianceStatus)
	}
	for i, rec := range r.Result.Recommendations {
		if rec == "" {
			return fmt.Errorf("report: recommendation[%d] is empty", i)
		}
	}
	for id, value := range r.Answers {
		if id == "" || value == "" {
			return fmt.Errorf("report: answers contain an empty question id or value")
		}
	}
	return nil
}
