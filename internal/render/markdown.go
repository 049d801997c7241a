package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/complykit/complykit/internal/schema"
)

type markdownRenderer struct{}

// Template note: ranging over .Answers is deterministic because
// text/template visits map keys in sorted order.
var mdTemplate = template.Must(template.New("report").Parse(`# AI Compliance Assessment

**Risk score:** {{ printf "%.1f" .Result.RiskScore }}/10.0
**Risk level:** {{ .Result.RiskLevel }}
**Compliance status:** {{ .Result.ComplianceStatus }}
{{ if .Result.Recommendations }}
---

## Recommendations
{{ range .Result.Recommendations }}
- {{ . }}{{ end }}
{{ end }}{{ if .Answers }}
---

## Answers
{{ range $id, $value := .Answers }}
- **{{ $id }}**: {{ $value }}{{ end }}
{{ end }}
---
*Pack: {{ .Input.Pack }} ({{ .Input.PackHash }})*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
