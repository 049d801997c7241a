// Package answers loads a pre-filled answer set from a YAML file, for
// non-interactive assessment runs.
package answers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/complykit/complykit/internal/rules"
	"github.com/complykit/complykit/internal/schema"
)

// Load reads a question-id to option-value mapping and validates every
// entry against the pack. Missing answers are not an error here;
// completeness is the scorer's concern.
func Load(path string, pack *rules.Pack) (schema.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return Parse(data, pack)
}

// Parse decodes and validates an answers document.
func Parse(data []byte, pack *rules.Pack) (schema.AnswerSet, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}

	set := make(schema.AnswerSet, len(raw))
	for id, value := range raw {
		q, ok := pack.Question(id)
		if !ok {
			return nil, fmt.Errorf("answers: unknown question id %q", id)
		}
		if !q.HasOption(value) {
			return nil, fmt.Errorf("answers: value %q is not an option of question %q", value, id)
		}
		set[id] = value
	}
	return set, nil
}
