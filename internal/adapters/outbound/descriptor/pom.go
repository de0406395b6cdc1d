package descriptor

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/abdidvp/docck/internal/domain"
)

type pomProject struct {
	XMLName         xml.Name            `xml:"project"`
	ArtifactID      string              `xml:"artifactId"`
	Name            string              `xml:"name"`
	Description     string              `xml:"description"`
	URL             string              `xml:"url"`
	Packaging       string              `xml:"packaging"`
	InceptionYear   string              `xml:"inceptionYear"`
	Licenses        []pomNameURL        `xml:"licenses>license"`
	Organization    *pomNameURL         `xml:"organization"`
	IssueManagement *pomIssueManagement `xml:"issueManagement"`
	Scm             *pomScm             `xml:"scm"`
	Prerequisites   *pomPrerequisites   `xml:"prerequisites"`
	MailingLists    []pomMailingList    `xml:"mailingLists>mailingList"`
	Modules         []string            `xml:"modules>module"`
}

type pomNameURL struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

type pomIssueManagement struct {
	System string `xml:"system"`
	URL    string `xml:"url"`
}

type pomScm struct {
	Connection          string `xml:"connection"`
	DeveloperConnection string `xml:"developerConnection"`
	URL                 string `xml:"url"`
}

type pomPrerequisites struct {
	Maven string `xml:"maven"`
}

type pomMailingList struct {
	Name    string `xml:"name"`
	Archive string `xml:"archive"`
}

func parsePOM(data []byte) (domain.Project, error) {
	var raw pomProject
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	if err := dec.Decode(&raw); err != nil {
		return domain.Project{}, err
	}

	p := domain.Project{
		ID:            strings.TrimSpace(raw.ArtifactID),
		Name:          strings.TrimSpace(raw.Name),
		Description:   strings.TrimSpace(raw.Description),
		URL:           strings.TrimSpace(raw.URL),
		Packaging:     domain.PackagingKind(strings.TrimSpace(raw.Packaging)),
		InceptionYear: strings.TrimSpace(raw.InceptionYear),
	}
	for _, l := range raw.Licenses {
		p.Licenses = append(p.Licenses, domain.License{
			Name: strings.TrimSpace(l.Name),
			URL:  strings.TrimSpace(l.URL),
		})
	}
	if o := raw.Organization; o != nil {
		p.Organization = &domain.Organization{Name: strings.TrimSpace(o.Name), URL: strings.TrimSpace(o.URL)}
	}
	if im := raw.IssueManagement; im != nil {
		p.IssueManagement = &domain.IssueManagement{System: strings.TrimSpace(im.System), URL: strings.TrimSpace(im.URL)}
	}
	if s := raw.Scm; s != nil {
		p.Scm = &domain.Scm{
			Connection:          strings.TrimSpace(s.Connection),
			DeveloperConnection: strings.TrimSpace(s.DeveloperConnection),
			URL:                 strings.TrimSpace(s.URL),
		}
	}
	if pr := raw.Prerequisites; pr != nil {
		p.Prerequisites = &domain.Prerequisites{Maven: strings.TrimSpace(pr.Maven)}
	}
	for _, ml := range raw.MailingLists {
		p.MailingLists = append(p.MailingLists, domain.MailingList{
			Name:    strings.TrimSpace(ml.Name),
			Archive: strings.TrimSpace(ml.Archive),
		})
	}
	for _, m := range raw.Modules {
		if m = strings.TrimSpace(m); m != "" {
			p.Modules = append(p.Modules, m)
		}
	}
	return p, nil
}
