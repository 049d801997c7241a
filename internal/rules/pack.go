// Package rules defines rule packs: the ordered question list plus the
// declarative risk-rule table that together configure an assessment.
// Changing regulatory guidance means editing pack data, not the
// scoring algorithm.
package rules

import (
	"crypto/sha256"
	"fmt"

	"github.com/complykit/complykit/internal/schema"
)

// Pack bundles a questionnaire with its scoring rules.
type Pack struct {
	Name      string            `yaml:"name"`
	Questions []schema.Question `yaml:"questions"`
	Rules     []schema.RiskRule `yaml:"rules"`

	// source is the YAML the pack was loaded from (or the canonical
	// rendering for built-in packs); it is what Hash covers.
	source []byte
}

// Get returns the built-in pack for the given name.
func Get(name string) (*Pack, error) {
	switch name {
	case "eu-ai-act", "":
		return euAIAct(), nil
	default:
		return nil, fmt.Errorf("unknown pack %q: valid built-in packs are eu-ai-act", name)
	}
}

// Hash returns "sha256:<hex>" of the pack source, recorded in report
// output so a result can be tied to the exact rule table that produced it.
func (p *Pack) Hash() string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(p.source))
}

// Question returns the question with the given id.
func (p *Pack) Question(id string) (schema.Question, bool) {
	for _, q := range p.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return schema.Question{}, false
}

// Validate checks the pack's internal consistency.
func (p *Pack) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pack name is required")
	}
	if len(p.Questions) == 0 {
		return fmt.Errorf("pack %q has no questions", p.Name)
	}

	seenQ := make(map[string]bool, len(p.Questions))
	for i, q := range p.Questions {
		prefix := fmt.Sprintf("question[%d]", i)
		if q.ID == "" {
			return fmt.Errorf("%s: id is required", prefix)
		}
		if seenQ[q.ID] {
			return fmt.Errorf("%s: duplicate question id %q", prefix, q.ID)
		}
		seenQ[q.ID] = true
		if q.Prompt == "" {
			return fmt.Errorf("%s (%s): prompt is required", prefix, q.ID)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("%s (%s): at least two options are required", prefix, q.ID)
		}
		seenOpt := make(map[string]bool, len(q.Options))
		for j, o := range q.Options {
			if o.Value == "" {
				return fmt.Errorf("%s (%s): option[%d] value is required", prefix, q.ID, j)
			}
			if seenOpt[o.Value] {
				return fmt.Errorf("%s (%s): duplicate option value %q", prefix, q.ID, o.Value)
			}
			seenOpt[o.Value] = true
		}
		if q.Optional && !q.HasOption(q.Neutral) {
			return fmt.Errorf("%s (%s): optional question must declare a neutral value among its options", prefix, q.ID)
		}
	}

	for i, r := range p.Rules {
		prefix := fmt.Sprintf("rule[%d]", i)
		q, ok := p.Question(r.QuestionID)
		if !ok {
			return fmt.Errorf("%s: unknown question id %q", prefix, r.QuestionID)
		}
		if !q.HasOption(r.Value) {
			return fmt.Errorf("%s: value %q is not an option of question %q", prefix, r.Value, r.QuestionID)
		}
	}

	return nil
}
