package actions

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/flexfield"
	"github.com/pixil98/gonorth-export/internal/placeholder"
	"github.com/pixil98/gonorth-export/internal/templates"
)

// output is what a variant computed for one action: token values, block
// conditions and objects for the flex field resolver, in insertion order.
type output struct {
	tokens  []tokenValue
	blocks  []blockValue
	objects []objectValue
}

type tokenValue struct {
	name  string
	value string
}

type blockValue struct {
	name string
	keep bool
}

type objectValue struct {
	prefix string
	data   flexfield.ObjectData
}

func newOutput() *output {
	return &output{}
}

func (o *output) token(name string, value string) *output {
	o.tokens = append(o.tokens, tokenValue{name: name, value: value})
	return o
}

func (o *output) block(name string, keep bool) *output {
	o.blocks = append(o.blocks, blockValue{name: name, keep: keep})
	return o
}

func (o *output) object(prefix string, data flexfield.ObjectData) *output {
	o.objects = append(o.objects, objectValue{prefix: prefix, data: data})
	return o
}

// expandFunc renders template code with an output. Content problems are
// recorded in the env's collection and yield "".
type expandFunc func(code string, out *output, e *env) (string, error)

// expandLegacy resolves the blocks, then replaces every token in one pass over
// the template. Substituted values are never scanned for placeholders.
func expandLegacy(code string, out *output, e *env) (string, error) {
	var err error
	for _, b := range out.blocks {
		code, err = placeholder.RenderNamedBlock(code, b.name, b.keep)
		if err != nil {
			return nestedBlock(err, b.name, e)
		}
	}
	for _, o := range out.objects {
		code, err = flexfield.FillBlocks(code, o.prefix, o.data)
		if err != nil {
			return nestedBlock(err, o.prefix, e)
		}
	}

	bindings := make([]flexfield.Binding, 0, len(out.objects))
	for _, o := range out.objects {
		bindings = append(bindings, flexfield.Binding{Prefix: o.prefix, Data: o.data})
	}
	tokens := make(map[string]string, len(out.tokens))
	for _, t := range out.tokens {
		if _, ok := tokens[t.name]; !ok {
			tokens[t.name] = t.value
		}
	}

	return flexfield.Replace(code, bindings, tokens, e.settings.EscapeSettings, e.errs)
}

func nestedBlock(err error, name string, e *env) (string, error) {
	if errors.Is(err, placeholder.ErrNestedBlock) {
		e.errs.Add(exporterr.KindNestedBlock, name, "template nests block %s inside itself", name)
		return "", nil
	}
	return "", err
}

var templateFuncs = sprig.TxtFuncMap()

// expandTemplateEngine executes the code as a text/template. Tokens are
// strings, blocks are booleans and objects are maps keyed by their prefix.
func expandTemplateEngine(code string, out *output, e *env) (string, error) {
	data := make(map[string]any, len(out.tokens)+len(out.blocks)+len(out.objects))
	for _, b := range out.blocks {
		data[b.name] = b.keep
	}
	for _, o := range out.objects {
		data[o.prefix] = flexfield.View(o.data, e.settings.EscapeSettings)
	}
	for _, t := range out.tokens {
		data[t.name] = t.value
	}

	name := e.node.ActionType.String()
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(code)
	if err != nil {
		e.errs.Add(exporterr.KindTemplateExecution, name, "parsing template: %v", err)
		return "", nil
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		e.errs.Add(exporterr.KindTemplateExecution, name, "executing template: %v", err)
		return "", nil
	}

	return buf.String(), nil
}

var families = map[templates.RenderingEngine]expandFunc{
	templates.RenderingEngineLegacy:   expandLegacy,
	templates.RenderingEngineTemplate: expandTemplateEngine,
}

func expanderFor(engine templates.RenderingEngine) (expandFunc, error) {
	fn, ok := families[engine]
	if !ok {
		return nil, fmt.Errorf("no renderer family for engine %s", engine)
	}
	return fn, nil
}
