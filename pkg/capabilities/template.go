package capabilities

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	TemplateContext struct {
		Browser       string
		Lineage       string
		CIEnvironment CIContext
	}

	CIContext struct {
		JobID            string
		ProjectNamespace string
		ProjectName      string
	}
)

// RenderExtra renders capabilities YAML template and parses the result into a Set
func RenderExtra(tpl string, tplCtx TemplateContext) (*Set, error) {
	tmpl, err := template.New("capabilities").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(tpl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse capabilities template")
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, tplCtx); err != nil {
		return nil, errors.Wrap(err, "failed to render capabilities template")
	}

	vals := make(map[string]any)
	if err := yaml.Unmarshal([]byte(sb.String()), &vals); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize rendered capabilities")
	}
	return FromMap(vals), nil
}
