package domain

import (
	"path/filepath"
	"strings"
)

// Severity classifies a Finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single documentation problem found while validating a project.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// DescriptorFormat identifies the dialect a project descriptor was written in.
// It only affects how missing fields are named in findings.
type DescriptorFormat string

const (
	FormatPOM  DescriptorFormat = "pom"
	FormatYAML DescriptorFormat = "yaml"
)

// Project is the read-only view of a project descriptor.
type Project struct {
	ID              string           `yaml:"id"              json:"id,omitempty"`
	Name            string           `yaml:"name"            json:"name,omitempty"`
	Description     string           `yaml:"description"     json:"description,omitempty"`
	URL             string           `yaml:"url"             json:"url,omitempty"`
	Packaging       PackagingKind    `yaml:"packaging"       json:"packaging,omitempty"`
	InceptionYear   string           `yaml:"inceptionYear"   json:"inception_year,omitempty"`
	Licenses        []License        `yaml:"licenses"        json:"licenses,omitempty"`
	Organization    *Organization    `yaml:"organization"    json:"organization,omitempty"`
	IssueManagement *IssueManagement `yaml:"issueManagement" json:"issue_management,omitempty"`
	Scm             *Scm             `yaml:"scm"             json:"scm,omitempty"`
	Prerequisites   *Prerequisites   `yaml:"prerequisites"   json:"prerequisites,omitempty"`
	MailingLists    []MailingList    `yaml:"mailingLists"    json:"mailing_lists,omitempty"`
	Modules         []string         `yaml:"modules"         json:"modules,omitempty"`

	// Populated by the descriptor loader.
	BaseDir    string           `yaml:"-" json:"base_dir,omitempty"`
	SiteDir    string           `yaml:"-" json:"site_dir,omitempty"`
	Descriptor string           `yaml:"-" json:"descriptor,omitempty"`
	Format     DescriptorFormat `yaml:"-" json:"format,omitempty"`
}

type License struct {
	Name string `yaml:"name" json:"name,omitempty"`
	URL  string `yaml:"url"  json:"url,omitempty"`
}

type Organization struct {
	Name string `yaml:"name" json:"name,omitempty"`
	URL  string `yaml:"url"  json:"url,omitempty"`
}

type IssueManagement struct {
	System string `yaml:"system" json:"system,omitempty"`
	URL    string `yaml:"url"    json:"url,omitempty"`
}

type Scm struct {
	Connection          string `yaml:"connection"          json:"connection,omitempty"`
	DeveloperConnection string `yaml:"developerConnection" json:"developer_connection,omitempty"`
	URL                 string `yaml:"url"                 json:"url,omitempty"`
}

// Prerequisites carries the minimum build-tool version.
type Prerequisites struct {
	Maven string `yaml:"maven" json:"maven,omitempty"`
}

type MailingList struct {
	Name    string `yaml:"name"    json:"name,omitempty"`
	Archive string `yaml:"archive" json:"archive,omitempty"`
}

// DisplayName is the name used in report headers. Descriptors without a name
// fall back to their id and then to their directory.
func (p *Project) DisplayName() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.ID != "":
		return p.ID
	case p.BaseDir != "":
		return filepath.Base(p.BaseDir)
	default:
		return "unnamed project"
	}
}

// DescriptorName is the file name findings refer to.
func (p *Project) DescriptorName() string {
	if p.Descriptor != "" {
		return filepath.Base(p.Descriptor)
	}
	if p.Format == FormatYAML {
		return "project.yaml"
	}
	return "pom.xml"
}

// FieldPath renders a descriptor field path in the descriptor's own dialect:
// <a>/<b> for pom.xml, 'a.b' for YAML.
func (p *Project) FieldPath(path ...string) string {
	if p.Format == FormatYAML {
		return "'" + strings.Join(path, ".") + "'"
	}
	return "<" + strings.Join(path, ">/<") + ">"
}

// FieldRef is FieldPath followed by the dialect's word for a field.
func (p *Project) FieldRef(path ...string) string {
	return p.FieldPath(path...) + " " + p.FieldKind()
}

// FieldKind is "tag" for pom.xml and "key" for YAML.
func (p *Project) FieldKind() string {
	if p.Format == FormatYAML {
		return "key"
	}
	return "tag"
}

// ListFieldPath is FieldPath for fields inside a repeated element. pom.xml
// wraps each entry in an item tag (<licenses>/<license>); YAML does not.
func (p *Project) ListFieldPath(list, item string, rest ...string) string {
	if p.Format == FormatYAML {
		return p.FieldPath(append([]string{list}, rest...)...)
	}
	return p.FieldPath(append([]string{list, item}, rest...)...)
}
