package domain

import (
	"fmt"
	"sort"
)

// PackagingKind tags a project with the kind of artifact it produces. The
// kind selects the DocumentationPolicy applied to its site directory.
type PackagingKind string

const (
	PackagingPlugin     PackagingKind = "plugin"
	PackagingLibrary    PackagingKind = "library"
	PackagingAggregator PackagingKind = "aggregator"
)

// DocumentFormat is a site subdirectory and the extension its sources use.
type DocumentFormat struct {
	Dir       string
	Extension string
}

// DocumentFormats lists the format/subdirectory pairs a document may be
// written in. Each also matches with a trailing .vm (velocity template).
var DocumentFormats = []DocumentFormat{
	{Dir: "apt", Extension: ".apt"},
	{Dir: "xdoc", Extension: ".xml"},
	{Dir: "fml", Extension: ".fml"},
	{Dir: "markdown", Extension: ".md"},
	{Dir: "resources", Extension: ".html"},
}

const formatHint = "(in apt|fml|html|md|xml[.vm] format)"

// ExpectedDocument is one document a policy requires. It is satisfied when at
// least one of Names matches a file in any DocumentFormat.
type ExpectedDocument struct {
	Names   []string `json:"names"`
	Missing string   `json:"missing"`
}

// Patterns expands the document names into include patterns relative to the
// site directory.
func (d ExpectedDocument) Patterns() []string {
	var out []string
	for _, name := range d.Names {
		out = append(out, DocumentPatterns(name)...)
	}
	return out
}

// DocumentPatterns returns the include patterns matching a logical document
// name in every known format.
func DocumentPatterns(name string) []string {
	out := make([]string, 0, len(DocumentFormats)*2)
	for _, f := range DocumentFormats {
		p := f.Dir + "/" + name + f.Extension
		out = append(out, p, p+".vm")
	}
	return out
}

// DocumentationPolicy lists the documents expected for a packaging kind.
type DocumentationPolicy interface {
	ExpectedDocuments() []ExpectedDocument
}

type documentSet []ExpectedDocument

func (s documentSet) ExpectedDocuments() []ExpectedDocument { return s }

func namedDocument(name string) ExpectedDocument {
	return ExpectedDocument{
		Names:   []string{name},
		Missing: fmt.Sprintf("There is no '%s' file in your site directory %s.", name, formatHint),
	}
}

var policies = map[PackagingKind]DocumentationPolicy{
	PackagingPlugin: documentSet{
		namedDocument("index"),
		namedDocument("usage"),
		namedDocument("faq"),
		{
			Names: []string{"**/examples/*", "example*"},
			Missing: "There are no example files in your site directory " + formatHint + ". " +
				"They should either be called 'example*.(apt|fml|html|md|xml)[.vm]' " +
				"or they should be located in the 'examples' directory.",
		},
	},
	PackagingLibrary: documentSet{
		namedDocument("index"),
		namedDocument("usage"),
	},
	PackagingAggregator: documentSet{
		namedDocument("index"),
	},
}

// PolicyFor returns the policy for kind, or false if the kind is unknown.
func PolicyFor(kind PackagingKind) (DocumentationPolicy, bool) {
	p, ok := policies[kind]
	return p, ok
}

// KnownPackagingKinds returns every kind that has a policy, sorted.
func KnownPackagingKinds() []PackagingKind {
	kinds := make([]PackagingKind, 0, len(policies))
	for k := range policies {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
