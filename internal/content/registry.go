// Package content is the curriculum dataset: typed bundles of topics,
// lessons, code examples, and quiz questions that the seeder ingests.
package content

import (
	"sort"

	"learnhub-content/internal/domain"
)

// Bundles returns the complete dataset sorted by bundle id. The seeder
// applies bundles in this order, so bundles sharing a topic slug always
// ingest deterministically.
func Bundles() []domain.Bundle {
	all := []domain.Bundle{
		basicArchitecture(),
		architectureDecisionRecords(),
		oopFundamentals(),
		oopPolymorphismAndSolid(),
		reactEssentials(),
		domainDrivenDesign(),
		relationalDatabases(),
		cloudArchitecture(),
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Bundle looks a bundle up by id.
func Bundle(id string) (domain.Bundle, bool) {
	for _, b := range Bundles() {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Bundle{}, false
}
