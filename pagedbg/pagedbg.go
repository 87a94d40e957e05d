/*
Package pagedbg implements helpers to debug a page tree.

Print renders a page tree as indented text, ToGraphViz as a diagram in
GraphViz DOT format, optionally showing the lowered styles of each node.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pagedbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/style"
	tp "github.com/xlab/treeprint"
)

// Print returns a text rendering of a page tree. Each line shows kind,
// widget type and id of a node, plus the devices it is hidden on.
func Print(root *page.Node) string {
	if root == nil {
		return "(empty)\n"
	}
	p := tp.New()
	p.SetValue(label(root))
	for _, ch := range root.Children {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, n *page.Node) {
	if n == nil {
		return
	}
	if len(n.Children) == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.Children {
		ppt(branch, ch)
	}
}

func label(n *page.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Kind.String())
	if n.WidgetType != "" {
		sb.WriteString(":" + n.WidgetType)
	}
	sb.WriteString(" #" + n.ID)
	var hidden []string
	for _, d := range page.Devices {
		if style.IsHiddenOnDevice(n, d) {
			hidden = append(hidden, d.String())
		}
	}
	if len(hidden) > 0 {
		sb.WriteString(" [hidden: " + strings.Join(hidden, ",") + "]")
	}
	return sb.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	Device         page.Device
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
	style.PGFlex,
}

type node struct {
	N    *page.Node
	Name string
}

type edge struct {
	N1, N2 node
}

type propertyGroup struct {
	ID         string
	Name       string
	Properties []keyValue
}

type keyValue struct {
	Key, Value string
}

// ToGraphViz outputs a diagram for a page tree in GraphViz (DOT) format.
// Styles of nodes, resolved for device, are included for each of the given
// property groups. If styleGroups is nil, margins, padding, border, display
// and flex properties are shown. Pass an empty list to omit styles.
func ToGraphViz(root *page.Node, w io.Writer, device page.Device, styleGroups []string) error {
	tmpl, err := template.New("page").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Device: device}
	gparams.NodeTmpl = template.Must(template.New("pagenode").Funcs(
		template.FuncMap{
			"label": func(n *page.Node) string { return fmt.Sprintf("%q", label(n)) },
		}).Parse(pageNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("pageedge").Parse(pageEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*page.Node]string, 256)
	if root != nil {
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n *page.Node, w io.Writer, dict map[*page.Node]string, gparams *graphParamsType) error {
	if err := pageNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children {
		if ch == nil {
			continue
		}
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, dict[n]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func pageNode(n *page.Node, w io.Writer, dict map[*page.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	return pageStyles(n, name, w, gparams)
}

func pageStyles(n *page.Node, name string, w io.Writer, gparams *graphParamsType) error {
	if len(gparams.StyleGroups) == 0 {
		return nil
	}
	decl := style.Lower(style.MergeStyle(n, gparams.Device))
	groups := make(map[string][]keyValue)
	for _, k := range decl.Keys() {
		g := style.GroupNameFromPropertyKey(k)
		groups[g] = append(groups[g], keyValue{style.KebabCase(k), decl[k].String()})
	}
	for _, g := range gparams.StyleGroups {
		props, ok := groups[g]
		if !ok {
			continue
		}
		sort.Slice(props, func(i, j int) bool { return props[i].Key < props[j].Key })
		pg := propertyGroup{ID: name + "_" + strings.ToLower(g), Name: g, Properties: props}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(w, pgedge{name, pg.ID}); err != nil {
			return err
		}
	}
	return nil
}

type pgedge struct {
	Name    string
	GroupID string
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const pageNodeTmpl = `{{ if eq .N.Kind "widget" }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor=grey95 fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ html .Key }}:</td><td>{{ html .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const pageEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ .GroupID }} [dir=none weight=1 style="dashed"] ;
`
