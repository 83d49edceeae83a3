// Package stage implements the normalization stage catalog: the concrete
// transforms a pipeline composes, each parameterized by a language policy
// entry from pkg/lang.
package stage

import "github.com/hazyhaar/normy/pkg/lang"

// Stage is the minimal capability every normalization stage implements:
// a conservative change predicate and the full transform.
//
// Contract (enforced by pkg/contract):
//   - Apply must be idempotent.
//   - If NeedsApply(x) is false, Apply(x) must return x itself, unmodified —
//     not merely an equal string, the same string value, so the caller's
//     zero-copy check (pointer identity of the underlying data) holds.
type Stage interface {
	Name() string
	NeedsApply(input string, e lang.Entry) bool
	Apply(input string, e lang.Entry) (string, error)
}

// Fusable is the optional capability a Stage implements when its behavior
// is expressible as a pure per-character (at most one-lookahead) adapter.
// Non-fusable stages (NFC family, StripHtml, StripMarkdown) implement only
// Stage.
type Fusable interface {
	Stage
	// FusedAdapter returns the per-character transducer for language e.
	// The pipeline's fused path calls it once per Normalize call.
	FusedAdapter(e lang.Entry) CharAdapter
}

// AsFusable type-asserts s to Fusable, the capability-detection mechanism
// spec §9 calls "interfaces with optional methods."
func AsFusable(s Stage) (Fusable, bool) {
	f, ok := s.(Fusable)
	return f, ok
}
