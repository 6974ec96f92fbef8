// Package report provides the fluent document builder. A Report
// accumulates LaTeX fragments (prose, equations, tables, figures, lists)
// into a single content buffer and finally wraps that buffer in a fixed
// preamble to form a compilable document. The builder owns its buffer
// exclusively; nothing else observes it before finalization.
package report

import (
	"fmt"
	"strings"

	"eurocalc/core/latex"
	"eurocalc/internal/errors"
)

// Report is a stateful accumulator of LaTeX fragments. Every Add method
// appends one fragment plus a structural newline and returns the same
// instance so calls chain.
type Report struct {
	title   string
	content strings.Builder
	err     error
}

// New creates an empty report, optionally with a title
func New(title ...string) *Report {
	r := &Report{}
	if len(title) > 0 {
		r.title = title[0]
	}
	return r
}

// Title returns the report title
func (r *Report) Title() string {
	return r.title
}

// Content returns the accumulated content
func (r *Report) Content() string {
	return r.content.String()
}

// Err returns the first accumulation defect, nil when clean
func (r *Report) Err() error {
	return r.err
}

func (r *Report) append(fragment string) *Report {
	r.content.WriteString(fragment)
	r.content.WriteString("\n")
	return r
}

func (r *Report) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// TextOption styles a text fragment
type TextOption func(*textStyle)

type textStyle struct {
	bold   bool
	italic bool
}

// Bold renders the text in bold
func Bold() TextOption {
	return func(s *textStyle) { s.bold = true }
}

// Italic renders the text in italics
func Italic() TextOption {
	return func(s *textStyle) { s.italic = true }
}

// AddText appends a styled text fragment. Unstyled text is wrapped in
// \text so raw braces and backslashes are not read as control sequences.
func (r *Report) AddText(text string, opts ...TextOption) *Report {
	var style textStyle
	for _, opt := range opts {
		opt(&style)
	}

	var wrapped string
	switch {
	case style.bold && style.italic:
		wrapped = `\textbf{\textit{` + text + `}}`
	case style.bold:
		wrapped = `\textbf{` + text + `}`
	case style.italic:
		wrapped = `\textit{` + text + `}`
	default:
		wrapped = `\text{` + text + `}`
	}
	return r.append(wrapped)
}

// AddSection appends a section heading
func (r *Report) AddSection(title string) *Report {
	return r.append(`\section{` + title + `}`)
}

// AddSubsection appends a subsection heading
func (r *Report) AddSubsection(title string) *Report {
	return r.append(`\subsection{` + title + `}`)
}

// AddSubsubsection appends a subsubsection heading
func (r *Report) AddSubsubsection(title string) *Report {
	return r.append(`\subsubsection{` + title + `}`)
}

// FormulaStyle selects which rendering of a formula to embed
type FormulaStyle int

const (
	// StyleShort embeds "symbol = result"
	StyleShort FormulaStyle = iota

	// StyleComplete embeds all non-empty layers
	StyleComplete

	// StyleCompleteWithUnits embeds the with-units numeric layer
	StyleCompleteWithUnits
)

// FormulaOption configures an equation fragment
type FormulaOption func(*formulaOpts)

type formulaOpts struct {
	style  FormulaStyle
	inline bool
	tag    string
}

// Style selects the formula rendering
func Style(s FormulaStyle) FormulaOption {
	return func(o *formulaOpts) { o.style = s }
}

// Inline embeds the equation in inline math instead of a display block
func Inline() FormulaOption {
	return func(o *formulaOpts) { o.inline = true }
}

// Tag attaches a clause or equation number to a display equation
func Tag(label string) FormulaOption {
	return func(o *formulaOpts) { o.tag = label }
}

// AddFormula appends a rendered formula as an equation fragment
func (r *Report) AddFormula(f latex.Formula, opts ...FormulaOption) *Report {
	o := collectFormulaOpts(opts)

	var body string
	switch o.style {
	case StyleComplete:
		body = f.Complete()
	case StyleCompleteWithUnits:
		body = f.CompleteWithUnits()
	default:
		body = f.Short()
	}
	return r.appendEquation(body, o)
}

// AddEquation appends a raw LaTeX equation fragment
func (r *Report) AddEquation(equation string, opts ...FormulaOption) *Report {
	return r.appendEquation(equation, collectFormulaOpts(opts))
}

func collectFormulaOpts(opts []FormulaOption) formulaOpts {
	var o formulaOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (r *Report) appendEquation(body string, o formulaOpts) *Report {
	if o.inline {
		return r.append(`$` + body + `$`)
	}

	var sb strings.Builder
	sb.WriteString("\\begin{equation}\n")
	sb.WriteString(body)
	if o.tag != "" {
		sb.WriteString(` \tag{` + o.tag + `}`)
	}
	sb.WriteString("\n\\end{equation}")
	return r.append(sb.String())
}

// TableOption configures a table fragment
type TableOption func(*tableOpts)

type tableOpts struct {
	position  string
	centering bool
}

// Position sets the float placement specifier
func Position(p string) TableOption {
	return func(o *tableOpts) { o.position = p }
}

// NoCentering disables the \centering directive
func NoCentering() TableOption {
	return func(o *tableOpts) { o.centering = false }
}

// AddTable appends a booktabs tabular. The column count follows the
// headers; a row with a different cell count is a defect: it is skipped
// and recorded, retrievable through Err.
func (r *Report) AddTable(headers []string, rows [][]string, opts ...TableOption) *Report {
	o := tableOpts{position: "h!", centering: true}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString(`\begin{table}[` + o.position + "]\n")
	if o.centering {
		sb.WriteString("\\centering\n")
	}
	sb.WriteString(`\begin{tabular}{` + strings.Repeat("l", len(headers)) + "}\n")
	sb.WriteString("\\toprule\n")
	sb.WriteString(strings.Join(headers, " & ") + " \\\\\n")
	sb.WriteString("\\midrule\n")
	for i, row := range rows {
		if len(row) != len(headers) {
			r.fail(errors.Newf(errors.TypeDefinition,
				"table row %d has %d cells, want %d", i, len(row), len(headers)))
			continue
		}
		sb.WriteString(strings.Join(row, " & ") + " \\\\\n")
	}
	sb.WriteString("\\bottomrule\n")
	sb.WriteString("\\end{tabular}\n")
	sb.WriteString(`\end{table}`)
	return r.append(sb.String())
}

// FigureOption configures a figure fragment
type FigureOption func(*figureOpts)

type figureOpts struct {
	width    float64
	position string
}

// Width sets the image width as a fraction of the text width
func Width(fraction float64) FigureOption {
	return func(o *figureOpts) { o.width = fraction }
}

// FigurePosition sets the float placement specifier
func FigurePosition(p string) FigureOption {
	return func(o *figureOpts) { o.position = p }
}

// AddFigure appends a centered figure embedding the image at a fraction
// of the text width
func (r *Report) AddFigure(imagePath string, opts ...FigureOption) *Report {
	o := figureOpts{width: 1.0, position: "h"}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString(`\begin{figure}[` + o.position + "]\n")
	sb.WriteString("\\centering\n")
	sb.WriteString(fmt.Sprintf("\\includegraphics[width=%g\\textwidth]{%s}\n", o.width, imagePath))
	sb.WriteString(`\end{figure}`)
	return r.append(sb.String())
}

// AddItemize appends an unordered list
func (r *Report) AddItemize(items []string) *Report {
	return r.appendList("itemize", items)
}

// AddEnumerate appends an ordered list
func (r *Report) AddEnumerate(items []string) *Report {
	return r.appendList("enumerate", items)
}

func (r *Report) appendList(environment string, items []string) *Report {
	var sb strings.Builder
	sb.WriteString(`\begin{` + environment + "}\n")
	for _, item := range items {
		sb.WriteString(`\item ` + item + "\n")
	}
	sb.WriteString(`\end{` + environment + `}`)
	return r.append(sb.String())
}

// AddNewLine appends n newline commands
func (r *Report) AddNewLine(n int) *Report {
	for i := 0; i < n; i++ {
		r.append(`\newline`)
	}
	return r
}
