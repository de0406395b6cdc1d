package rules

import (
	"context"
	"fmt"

	"github.com/abdidvp/docck/internal/domain"
)

// CheckDescriptor applies the descriptor field checklist. Each rule stands on
// its own; a rule only skips its sub-checks when the parent field is absent.
func (e *Engine) CheckDescriptor(ctx context.Context, p *domain.Project, r *domain.Reporter) {
	e.checkLicenses(ctx, p, r)

	if p.Name == "" {
		r.Error(missing(p, p.FieldRef("name")))
	}

	if p.Description == "" {
		r.Error(missing(p, p.FieldRef("description")))
	}

	if p.URL == "" {
		r.Error(missing(p, p.FieldRef("url")))
	} else {
		e.verify(ctx, r, p, p.URL, "project site")
	}

	if p.IssueManagement == nil {
		r.Error(missing(p, p.FieldRef("issueManagement")))
	} else if p.IssueManagement.URL == "" {
		r.Error(fmt.Sprintf("%s is missing the %s in %s.", p.DescriptorName(),
			p.FieldRef("url"), p.FieldPath("issueManagement")))
	} else {
		e.verify(ctx, r, p, p.IssueManagement.URL, "Issue Management")
	}

	if p.Prerequisites == nil {
		r.Error(missing(p, p.FieldRef("prerequisites")))
	} else if p.Prerequisites.Maven == "" {
		r.Error(missing(p, p.FieldRef("prerequisites", "maven")))
	}

	if p.InceptionYear == "" {
		r.Error(missing(p, p.FieldRef("inceptionYear")))
	}

	if len(p.MailingLists) == 0 {
		r.Warn(fmt.Sprintf("%s has no %s specified.", p.DescriptorName(),
			p.ListFieldPath("mailingLists", "mailingList")))
	}

	e.checkScm(ctx, p, r)
	e.checkOrganization(ctx, p, r)
}

func (e *Engine) checkLicenses(ctx context.Context, p *domain.Project, r *domain.Reporter) {
	if len(p.Licenses) == 0 {
		r.Error(fmt.Sprintf("%s has no %s specified.", p.DescriptorName(),
			p.ListFieldPath("licenses", "license")))
		return
	}

	for _, l := range p.Licenses {
		switch {
		case l.Name == "":
			r.Error(missing(p, p.ListFieldPath("licenses", "license", "name")+" "+p.FieldKind()))
		case l.URL == "":
			r.Error(fmt.Sprintf("%s is missing the %s for the license '%s'.", p.DescriptorName(),
				p.ListFieldPath("licenses", "license", "url")+" "+p.FieldKind(), l.Name))
		default:
			e.verify(ctx, r, p, l.URL, fmt.Sprintf("license '%s'", l.Name))
		}
	}
}

// checkScm only ever warns: a missing or broken SCM section does not fail
// the run, even when its URL is unreachable.
func (e *Engine) checkScm(ctx context.Context, p *domain.Project, r *domain.Reporter) {
	scm := p.Scm
	switch {
	case scm == nil:
		r.Warn(missing(p, p.FieldRef("scm")))
	case scm.Connection == "" && scm.DeveloperConnection == "" && scm.URL == "":
		r.Warn(fmt.Sprintf("%s is missing the child %ss under the %s.", p.DescriptorName(),
			p.FieldKind(), p.FieldRef("scm")))
	case scm.URL != "":
		e.verifyAdvisory(ctx, r, p, scm.URL, "scm")
	}
}

func (e *Engine) checkOrganization(ctx context.Context, p *domain.Project, r *domain.Reporter) {
	org := p.Organization
	switch {
	case org == nil:
		r.Error(missing(p, p.FieldRef("organization")))
	case org.Name == "":
		r.Error(missing(p, p.FieldRef("organization", "name")))
	case org.URL != "":
		e.verify(ctx, r, p, org.URL, org.Name+" site")
	}
}

func missing(p *domain.Project, field string) string {
	return fmt.Sprintf("%s is missing the %s.", p.DescriptorName(), field)
}
