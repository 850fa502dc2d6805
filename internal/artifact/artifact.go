// Package artifact defines the rendered output of the template renderer.
package artifact

import "sort"

// Kind names a template skeleton in the closed catalog.
type Kind string

const (
	KindLoginTest        Kind = "login_test"
	KindPageObject       Kind = "page_object"
	KindDataDriven       Kind = "data_driven_test"
	KindAPIIntegration   Kind = "api_integration_test"
	KindAdvancedKeywords Kind = "advanced_keywords"
	KindExtendedKeywords Kind = "extended_keywords"
	KindPerformanceTest  Kind = "performance_monitoring_test"
)

// kindSet is the closed catalog; Known and Kinds derive from it.
var kindSet = map[Kind]struct{}{
	KindLoginTest:        {},
	KindPageObject:       {},
	KindDataDriven:       {},
	KindAPIIntegration:   {},
	KindAdvancedKeywords: {},
	KindExtendedKeywords: {},
	KindPerformanceTest:  {},
}

// Known reports whether k names a catalog skeleton.
func Known(k Kind) bool {
	_, ok := kindSet[k]

	return ok
}

// Kinds returns all catalog kinds in stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindSet))
	for k := range kindSet {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// Artifact is a complete rendered test-automation source text. It is
// immutable once produced; ownership passes entirely to the caller.
type Artifact struct {
	Kind Kind
	Body string

	// Dialect records which selector dialect the renderer used, and
	// UsedDefaultDialect whether the caller's identifier missed the
	// catalog and the default was substituted. Transports surface this
	// to the caller as a warning rather than dropping it.
	Dialect            string
	UsedDefaultDialect bool
}
