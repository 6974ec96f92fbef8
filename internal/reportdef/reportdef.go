// Package reportdef loads report definitions authored in HCL and replays
// them onto a report builder. Narrative content (sections, prose, tables,
// figures, lists) can be authored declaratively; computed formulas still
// enter the report through code.
package reportdef

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"eurocalc/core/report"
	"eurocalc/internal/errors"
	"eurocalc/internal/logging"
)

// Definition is an ordered report definition
type Definition struct {
	// Title is the document title
	Title string

	// Elements are the content fragments in authoring order
	Elements []Element
}

// Element is one content fragment of a definition
type Element interface {
	apply(r *report.Report) error
}

// Load parses a report definition file
func Load(path string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeDefinition, diags, "cannot parse definition %s", path)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.Definition("definition body is not native HCL syntax")
	}
	return decode(body)
}

// Apply replays the definition onto a report
func (d *Definition) Apply(r *report.Report) error {
	for _, el := range d.Elements {
		if err := el.apply(r); err != nil {
			return err
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	logging.Debug("report definition applied",
		zap.String("title", d.Title),
		zap.Int("elements", len(d.Elements)))
	return nil
}

func decode(body *hclsyntax.Body) (*Definition, error) {
	def := &Definition{}

	for name, attr := range body.Attributes {
		if name != "title" {
			return nil, errors.Newf(errors.TypeDefinition,
				"unknown top-level attribute %q", name)
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Wrap(errors.TypeDefinition, "invalid title", diags)
		}
		if v.Type() != cty.String {
			return nil, errors.Definition("title must be a string")
		}
		def.Title = v.AsString()
	}

	for _, block := range body.Blocks {
		el, err := decodeBlock(block)
		if err != nil {
			return nil, err
		}
		def.Elements = append(def.Elements, el)
	}
	return def, nil
}

func decodeBlock(block *hclsyntax.Block) (Element, error) {
	switch block.Type {
	case "section", "subsection", "subsubsection":
		if len(block.Labels) != 1 {
			return nil, errors.Newf(errors.TypeDefinition,
				"%s block needs exactly one label", block.Type)
		}
		return &heading{level: block.Type, title: block.Labels[0]}, nil

	case "text":
		el := &text{}
		return el, decodeInto(block, el)

	case "equation":
		el := &equation{}
		return el, decodeInto(block, el)

	case "table":
		el := &table{}
		return el, decodeInto(block, el)

	case "figure":
		el := &figure{}
		return el, decodeInto(block, el)

	case "itemize":
		el := &list{environment: "itemize"}
		return el, decodeInto(block, el)

	case "enumerate":
		el := &list{environment: "enumerate"}
		return el, decodeInto(block, el)

	case "newline":
		el := &newline{}
		return el, decodeInto(block, el)

	default:
		return nil, errors.Newf(errors.TypeDefinition,
			"unknown block type %q at %s", block.Type, block.DefRange().String())
	}
}

func decodeInto(block *hclsyntax.Block, target interface{}) error {
	diags := gohcl.DecodeBody(block.Body, nil, target)
	if diags.HasErrors() {
		return errors.Wrapf(errors.TypeDefinition, diags,
			"invalid %s block at %s", block.Type, block.DefRange().String())
	}
	return nil
}

type heading struct {
	level string
	title string
}

func (h *heading) apply(r *report.Report) error {
	switch h.level {
	case "section":
		r.AddSection(h.title)
	case "subsection":
		r.AddSubsection(h.title)
	default:
		r.AddSubsubsection(h.title)
	}
	return nil
}

type text struct {
	Body   string `hcl:"body"`
	Bold   bool   `hcl:"bold,optional"`
	Italic bool   `hcl:"italic,optional"`
}

func (t *text) apply(r *report.Report) error {
	var opts []report.TextOption
	if t.Bold {
		opts = append(opts, report.Bold())
	}
	if t.Italic {
		opts = append(opts, report.Italic())
	}
	r.AddText(t.Body, opts...)
	return nil
}

type equation struct {
	Latex  string `hcl:"latex"`
	Inline bool   `hcl:"inline,optional"`
	Tag    string `hcl:"tag,optional"`
}

func (e *equation) apply(r *report.Report) error {
	var opts []report.FormulaOption
	if e.Inline {
		opts = append(opts, report.Inline())
	}
	if e.Tag != "" {
		opts = append(opts, report.Tag(e.Tag))
	}
	r.AddEquation(e.Latex, opts...)
	return nil
}

type table struct {
	Headers []string `hcl:"headers"`
	Rows    []row    `hcl:"row,block"`
}

type row struct {
	Cells []string `hcl:"cells"`
}

func (t *table) apply(r *report.Report) error {
	rows := make([][]string, len(t.Rows))
	for i, rw := range t.Rows {
		if len(rw.Cells) != len(t.Headers) {
			return errors.Newf(errors.TypeDefinition,
				"table row %d has %d cells, want %d", i, len(rw.Cells), len(t.Headers))
		}
		rows[i] = rw.Cells
	}
	r.AddTable(t.Headers, rows)
	return nil
}

type figure struct {
	Path     string  `hcl:"path"`
	Width    float64 `hcl:"width,optional"`
	Position string  `hcl:"position,optional"`
}

func (f *figure) apply(r *report.Report) error {
	var opts []report.FigureOption
	if f.Width > 0 {
		opts = append(opts, report.Width(f.Width))
	}
	if f.Position != "" {
		opts = append(opts, report.FigurePosition(f.Position))
	}
	r.AddFigure(f.Path, opts...)
	return nil
}

type list struct {
	environment string

	Items []string `hcl:"items"`
}

func (l *list) apply(r *report.Report) error {
	if l.environment == "enumerate" {
		r.AddEnumerate(l.Items)
	} else {
		r.AddItemize(l.Items)
	}
	return nil
}

type newline struct {
	Count int `hcl:"count,optional"`
}

func (n *newline) apply(r *report.Report) error {
	count := n.Count
	if count == 0 {
		count = 1
	}
	r.AddNewLine(count)
	return nil
}
