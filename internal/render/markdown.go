package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/rgordon/buscheck/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("report").Parse(`# Bus Compliance Report

**Bus:** {{ .Input.Bus }}
**Verdict:** {{ .Summary.Verdict }}
**Passed:** {{ .Summary.PassCount }} | **Failed:** {{ .Summary.FailCount }}

| Check | Result | Detail |
|---|---|---|
{{ range .Checks }}| {{ .Label }} | {{ if .Pass }}PASS{{ else }}FAIL{{ end }} | {{ .Detail }} |
{{ end }}
---
*{{ .Tool }} {{ .Version }} | run {{ .Meta.RunID }}*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
