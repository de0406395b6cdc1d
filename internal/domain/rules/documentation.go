package rules

import (
	"fmt"

	"github.com/abdidvp/docck/internal/domain"
)

// CheckDocumentation verifies that the site directory holds every document
// the project's packaging policy expects. Packagings without a policy have
// nothing to check.
func (e *Engine) CheckDocumentation(p *domain.Project, r *domain.Reporter) {
	policy, ok := domain.PolicyFor(p.Packaging)
	if !ok {
		return
	}

	for _, doc := range policy.ExpectedDocuments() {
		found, err := e.matcher.Match(p.SiteDir, doc.Patterns())
		if err != nil {
			r.Error(fmt.Sprintf("Unable to scan the site directory '%s': %v", p.SiteDir, err))
			return
		}
		if len(found) == 0 {
			r.Error(doc.Missing)
		}
	}
}
