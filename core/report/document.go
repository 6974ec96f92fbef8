package report

import "strings"

// preamble is the fixed document head. It is a bit-exact contract:
// generated documents must be visually identical across tool versions,
// so the package list and the heading color scheme never vary.
const preamble = `\documentclass[11pt]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{helvet}
\renewcommand{\familydefault}{\sfdefault}
\usepackage{amsmath}
\usepackage{booktabs}
\usepackage[a4paper, margin=2.5cm]{geometry}
\usepackage{graphicx}
\usepackage{xcolor}
\usepackage{titlesec}
\usepackage{enumitem}
\definecolor{headingblue}{RGB}{0, 60, 113}
\titleformat{\section}{\color{headingblue}\Large\bfseries}{\thesection}{1em}{}
\titleformat{\subsection}{\color{headingblue}\large\bfseries}{\thesubsection}{1em}{}
\titleformat{\subsubsection}{\color{headingblue}\normalsize\bfseries}{\thesubsubsection}{1em}{}
`

// ToDocument wraps the accumulated content in the fixed preamble and a
// document terminator, returning a fresh string. The content buffer is
// never mutated: calling ToDocument twice yields identical documents,
// unless a different title argument is passed.
//
// Title resolution: the explicit argument wins, then the instance title,
// then no title block at all.
func (r *Report) ToDocument(title ...string) string {
	resolved := r.title
	if len(title) > 0 && title[0] != "" {
		resolved = title[0]
	}

	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\\begin{document}\n")
	if resolved != "" {
		sb.WriteString(`{\color{headingblue}\Huge\bfseries ` + resolved + "\\par}\n")
		sb.WriteString("\\vspace{1em}\n")
	}
	sb.WriteString(r.content.String())
	sb.WriteString("\\end{document}\n")
	return sb.String()
}
