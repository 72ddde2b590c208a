// Package mock provides test doubles for the ai service interfaces.
//
// The mocks default to deterministic behavior that honors the production
// contracts (empty-input sentinels, ranked and bounded classifications) and
// allow custom behavior injection via function fields for failure testing.
package mock
