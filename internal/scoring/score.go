// Package scoring turns a complete answer set into an assessment
// result by applying a rule pack's declarative rule table. The
// algorithm is a linear weighted sum: rule authors can add or remove
// questions without re-deriving thresholds.
package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/complykit/complykit/internal/rules"
	"github.com/complykit/complykit/internal/schema"
)

// Score bounds. Accumulated contributions saturate at MaxScore rather
// than being rescaled; rules are authored assuming the clamp.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// band maps a score floor (inclusive) to a risk level. Bands are
// checked highest floor first.
type band struct {
	floor float64
	level schema.RiskLevel
}

var bands = []band{
	{7.5, schema.RiskUnacceptable},
	{5.0, schema.RiskHigh},
	{2.5, schema.RiskLimited},
	{0.0, schema.RiskMinimal},
}

// complianceFor maps each risk level to its compliance status. Both
// limited and high fold into partially_compliant; the status is
// deliberately coarser than the risk level. Kept as data so a mapping
// correction never touches the scoring loop.
var complianceFor = map[schema.RiskLevel]schema.ComplianceStatus{
	schema.RiskMinimal:      schema.StatusCompliant,
	schema.RiskLimited:      schema.StatusPartiallyCompliant,
	schema.RiskHigh:         schema.StatusPartiallyCompliant,
	schema.RiskUnacceptable: schema.StatusNonCompliant,
}

// IncompleteAnswerSetError reports mandatory questions missing from
// the answer set handed to Score. Missing ids appear in questionnaire
// order.
type IncompleteAnswerSetError struct {
	Missing []string
}

func (e *IncompleteAnswerSetError) Error() string {
	return fmt.Sprintf("answer set is missing mandatory questions: %s", strings.Join(e.Missing, ", "))
}

// Score computes the deterministic assessment result for a complete
// answer set. It never partially computes: a missing mandatory answer
// fails before any rule is applied. Unanswered optional questions are
// scored as their declared neutral option. created_at is the only
// non-deterministic output field.
func Score(pack *rules.Pack, answers schema.AnswerSet) (schema.AssessmentResult, error) {
	effective, err := effectiveAnswers(pack, answers)
	if err != nil {
		return schema.AssessmentResult{}, err
	}

	total := 0.0
	var recommendations []string
	seen := make(map[string]bool)
	for _, r := range pack.Rules {
		if effective[r.QuestionID] != r.Value {
			continue
		}
		total += r.ScoreDelta
		if r.Recommendation != "" && !seen[r.Recommendation] {
			seen[r.Recommendation] = true
			recommendations = append(recommendations, r.Recommendation)
		}
	}

	score := clamp(total)
	level := LevelForScore(score)

	return schema.AssessmentResult{
		RiskScore:        score,
		RiskLevel:        level,
		ComplianceStatus: complianceFor[level],
		Recommendations:  recommendations,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// effectiveAnswers validates completeness and substitutes neutral
// values for unanswered optional questions.
func effectiveAnswers(pack *rules.Pack, answers schema.AnswerSet) (schema.AnswerSet, error) {
	effective := make(schema.AnswerSet, len(pack.Questions))
	var missing []string
	for _, q := range pack.Questions {
		v, ok := answers[q.ID]
		if !ok {
			if q.Optional {
				effective[q.ID] = q.Neutral
				continue
			}
			missing = append(missing, q.ID)
			continue
		}
		effective[q.ID] = v
	}
	if len(missing) > 0 {
		return nil, &IncompleteAnswerSetError{Missing: missing}
	}
	return effective, nil
}

// LevelForScore maps a clamped score to its risk level. Band bounds
// are inclusive on the lower edge: exactly 2.5 is limited, exactly 5.0
// is high, exactly 7.5 is unacceptable.
func LevelForScore(score float64) schema.RiskLevel {
	for _, b := range bands {
		if score >= b.floor {
			return b.level
		}
	}
	return schema.RiskMinimal
}

func clamp(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
