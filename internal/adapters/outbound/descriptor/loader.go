package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/docck/internal/domain"
)

const (
	yamlFile = "project.yaml"
	pomFile  = "pom.xml"
)

// ErrNoDescriptor is returned when a directory holds neither project.yaml nor
// pom.xml.
var ErrNoDescriptor = errors.New("no project.yaml or pom.xml found")

// Loader implements domain.DescriptorLoader. It reads the root descriptor and
// then every declared module, depth-first with parents before children.
type Loader struct {
	siteDirectory string
}

// New creates a Loader. A relative siteDirectory is resolved against each
// project's own directory; an empty one means src/site.
func New(siteDirectory string) *Loader {
	if siteDirectory == "" {
		siteDirectory = domain.DefaultSiteDirectory
	}
	return &Loader{siteDirectory: siteDirectory}
}

func (l *Loader) Load(rootPath string) ([]domain.Project, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	var projects []domain.Project
	visited := make(map[string]bool)
	if err := l.load(absPath, visited, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (l *Loader) load(dir string, visited map[string]bool, out *[]domain.Project) error {
	if visited[dir] {
		return nil
	}
	visited[dir] = true

	p, err := l.read(dir)
	if err != nil {
		return err
	}
	*out = append(*out, p)

	for _, m := range p.Modules {
		child := filepath.Clean(filepath.Join(dir, filepath.FromSlash(m)))
		if err := l.load(child, visited, out); err != nil {
			return fmt.Errorf("loading module %q of %s: %w", m, p.DisplayName(), err)
		}
	}
	return nil
}

func (l *Loader) read(dir string) (domain.Project, error) {
	var (
		p   domain.Project
		err error
	)

	path := filepath.Join(dir, yamlFile)
	data, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		p, err = parseYAML(data)
		p.Format = domain.FormatYAML
	case errors.Is(readErr, os.ErrNotExist):
		path = filepath.Join(dir, pomFile)
		data, readErr = os.ReadFile(path)
		if errors.Is(readErr, os.ErrNotExist) {
			return domain.Project{}, fmt.Errorf("%w in %s", ErrNoDescriptor, dir)
		}
		if readErr != nil {
			return domain.Project{}, fmt.Errorf("reading %s: %w", path, readErr)
		}
		p, err = parsePOM(data)
		p.Format = domain.FormatPOM
	default:
		return domain.Project{}, fmt.Errorf("reading %s: %w", path, readErr)
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	p.Packaging = normalizePackaging(p.Packaging)
	p.BaseDir = dir
	p.Descriptor = path
	p.SiteDir = l.siteDirectory
	if !filepath.IsAbs(p.SiteDir) {
		p.SiteDir = filepath.Join(dir, filepath.FromSlash(p.SiteDir))
	}
	return p, nil
}

// normalizePackaging maps Maven packaging names onto policy kinds. Projects
// without a packaging produce a library, as Maven's default jar does.
func normalizePackaging(kind domain.PackagingKind) domain.PackagingKind {
	switch kind {
	case "", "jar":
		return domain.PackagingLibrary
	case "maven-plugin":
		return domain.PackagingPlugin
	case "pom":
		return domain.PackagingAggregator
	default:
		return kind
	}
}
