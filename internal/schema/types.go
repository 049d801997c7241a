package schema

import "time"

// Report is the top-level output structure for a completed assessment.
type Report struct {
	Tool    string           `json:"tool"`
	Version string           `json:"version"`
	Input   Input            `json:"input"`
	Result  AssessmentResult `json:"result"`
	Answers AnswerSet        `json:"answers"`
}

// Input captures the parameters used for this run.
type Input struct {
	Pack        string `json:"pack"`
	PackHash    string `json:"pack_hash"` // "sha256:<hex>" of the rule-pack source
	AnswersFile string `json:"answers_file,omitempty"`
	Interactive bool   `json:"interactive"`
}

// Question is one step of the questionnaire. Option order is
// significant: it defines presentation order and must be stable.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Options  []Option `json:"options" yaml:"options"`
	Optional bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	// Neutral is the option value scored for an unanswered optional
	// question. Ignored for mandatory questions.
	Neutral string `json:"neutral,omitempty" yaml:"neutral,omitempty"`
}

// Option is one selectable answer. Value is the canonical token used
// in scoring rules; Label is presentation only.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// HasOption reports whether value is one of the question's declared options.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// AnswerSet maps a question id to the selected option value.
type AnswerSet map[string]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// RiskLevel classifies the numeric risk score.
type RiskLevel string

const (
	RiskMinimal      RiskLevel = "minimal"
	RiskLimited      RiskLevel = "limited"
	RiskHigh         RiskLevel = "high"
	RiskUnacceptable RiskLevel = "unacceptable"
)

// RiskOrdinal returns the numeric ordering for a risk level, used by
// --fail-on comparison. minimal(0) < limited(1) < high(2) < unacceptable(3).
// Returns -1 for an unrecognised level.
func RiskOrdinal(l RiskLevel) int {
	switch l {
	case RiskMinimal:
		return 0
	case RiskLimited:
		return 1
	case RiskHigh:
		return 2
	case RiskUnacceptable:
		return 3
	default:
		return -1
	}
}

// ComplianceStatus is the coarser regulatory classification derived
// from the risk level.
type ComplianceStatus string

const (
	StatusCompliant          ComplianceStatus = "compliant"
	StatusPartiallyCompliant ComplianceStatus = "partially_compliant"
	StatusNonCompliant       ComplianceStatus = "non_compliant"
	StatusNotAssessed        ComplianceStatus = "not_assessed"
)

// IsValidStatus reports whether s is one of the defined compliance statuses.
func IsValidStatus(s ComplianceStatus) bool {
	switch s {
	case StatusCompliant, StatusPartiallyCompliant, StatusNonCompliant, StatusNotAssessed:
		return true
	}
	return false
}

// IsValidRiskLevel reports whether l is one of the defined risk levels.
func IsValidRiskLevel(l RiskLevel) bool {
	return RiskOrdinal(l) >= 0
}

// AssessmentResult is the outcome of scoring a complete answer set.
// Immutable after creation.
type AssessmentResult struct {
	RiskScore        float64          `json:"risk_score"`
	RiskLevel        RiskLevel        `json:"risk_level"`
	ComplianceStatus ComplianceStatus `json:"compliance_status"`
	Recommendations  []string         `json:"recommendations"`
	CreatedAt        time.Time        `json:"created_at"`
}

// RiskRule maps one (question, answer value) pair to a score
// contribution and an optional recommendation. The rule table is
// configuration data: regulatory changes are rule edits, not code edits.
type RiskRule struct {
	QuestionID     string  `json:"question_id" yaml:"question_id"`
	Value          string  `json:"value" yaml:"value"`
	ScoreDelta     float64 `json:"score_delta" yaml:"score_delta"`
	Recommendation string  `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
}
