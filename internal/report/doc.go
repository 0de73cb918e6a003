// Package report renders a resolution result for operators, either as a
// human-readable summary or as JSON. Secret values are never printed; only
// whether each key is set.
package report
