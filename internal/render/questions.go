package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/complykit/complykit/internal/rules"
)

var questionsTemplate = template.Must(template.New("questions").Parse(`# Questionnaire: {{ .Name }}
{{ range $i, $q := .Questions }}
## {{ $q.ID }}
{{ $q.Prompt }}
{{ range $q.Options }}
- ` + "`{{ .Value }}`" + ` — {{ .Label }}{{ end }}
{{ end }}`))

// Questions renders a pack's questionnaire in the given format.
func Questions(pack *rules.Pack, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(pack.Questions, "", "  ")
	case "md":
		var buf bytes.Buffer
		if err := questionsTemplate.Execute(&buf, pack); err != nil {
			return nil, fmt.Errorf("rendering questions: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, md", format)
	}
}

// JSON renders any value as indented JSON, for one-off outputs that do
// not go through a Renderer.
func JSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
