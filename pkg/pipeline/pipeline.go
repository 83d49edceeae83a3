// Package pipeline is the normalization engine's executor: it assembles a
// language and an ordered stage list into a Pipeline value, picks a fused
// or sequential execution path at build time, and exposes the two public
// entry points, Normalize and NormalizeNoFusion.
package pipeline

import (
	"unicode/utf8"

	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/stage"
)

type boundStage struct {
	stage  stage.Stage
	entry  lang.Entry
	fusion stage.Fusable // nil if stage is not Fusable
}

// Pipeline is an ordered sequence of stages bound to one language. Built
// once via Build and safe for unbounded concurrent Normalize/
// NormalizeNoFusion calls: nothing in a Pipeline is mutated after Build
// returns.
type Pipeline struct {
	bound     []boundStage
	fuseReady bool // all stages Fusable AND len(bound) >= 2
}

// Build assembles stages into a pipeline for language tag, resolving the
// language policy table (falling back to English-equivalent defaults for
// an unrecognized tag, per spec §6) and computing fusion eligibility once.
func Build(tag lang.Tag, stages ...stage.Stage) (*Pipeline, error) {
	entry := lang.Lookup(tag)

	hasTransliterate := false
	for _, s := range stages {
		if _, ok := s.(stage.Transliterate); ok {
			hasTransliterate = true
			break
		}
	}

	if err := checkOptInTables(tag, entry, stages); err != nil {
		return nil, err
	}

	bound := make([]boundStage, 0, len(stages))
	allFusable := len(stages) > 0
	for _, s := range stages {
		e := entry
		// Transliterate-dominates-strip: when both stages are present,
		// RemoveDiacritics must not re-strip a codepoint Transliterate
		// already claims (spec §4.2).
		if hasTransliterate {
			if _, ok := s.(stage.RemoveDiacritics); ok {
				e = excludeTransliterated(entry)
			}
		}

		bs := boundStage{stage: s, entry: e}
		if f, ok := stage.AsFusable(s); ok {
			bs.fusion = f
		} else {
			allFusable = false
		}
		bound = append(bound, bs)
	}

	return &Pipeline{
		bound:     bound,
		fuseReady: allFusable && len(bound) >= 2,
	}, nil
}

// checkOptInTables rejects a language/stage pairing where an opt-in stage
// (Transliterate, RemoveDiacritics) would be a permanent no-op because the
// resolved language entry carries none of the table it reads from — spec
// §6/§7's InvalidConfiguration, raised at Build so the caller never silently
// ships a stage that can never do anything.
func checkOptInTables(tag lang.Tag, entry lang.Entry, stages []stage.Stage) error {
	for _, s := range stages {
		switch s.(type) {
		case stage.Transliterate:
			if len(entry.Transliterate) == 0 {
				return &ConfigError{
					Stage:  s.Name(),
					Lang:   string(tag),
					Reason: "language has no transliteration table",
				}
			}
		case stage.RemoveDiacritics:
			if len(entry.SpacingDiacritics) == 0 && len(entry.PrecomposedToBase) == 0 {
				return &ConfigError{
					Stage:  s.Name(),
					Lang:   string(tag),
					Reason: "language has neither spacing diacritics nor precomposed-to-base tables",
				}
			}
		}
	}
	return nil
}

func excludeTransliterated(e lang.Entry) lang.Entry {
	if len(e.Transliterate) == 0 {
		return e
	}
	covered := make(map[rune]bool, len(e.Transliterate))
	for _, m := range e.Transliterate {
		covered[m.From] = true
	}
	out := e
	if len(e.SpacingDiacritics) > 0 {
		sd := make(map[rune]bool, len(e.SpacingDiacritics))
		for r := range e.SpacingDiacritics {
			if !covered[r] {
				sd[r] = true
			}
		}
		out.SpacingDiacritics = sd
	}
	if len(e.PrecomposedToBase) > 0 {
		pb := make(map[rune]rune, len(e.PrecomposedToBase))
		for r, b := range e.PrecomposedToBase {
			if !covered[r] {
				pb[r] = b
			}
		}
		out.PrecomposedToBase = pb
	}
	return out
}

// Normalize runs the pipeline over input, using the fused streaming path
// when all stages support it and falling back to the sequential apply-
// chain otherwise.
func (p *Pipeline) Normalize(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", &InputError{Input: input}
	}
	if p.fuseReady {
		return p.normalizeFused(input)
	}
	return p.normalizeSequential(input)
}

// NormalizeNoFusion forces the sequential apply-chain regardless of fusion
// eligibility, for debugging and benchmarking against the fused path.
func (p *Pipeline) NormalizeNoFusion(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", &InputError{Input: input}
	}
	return p.normalizeSequential(input)
}

func (p *Pipeline) normalizeSequential(input string) (string, error) {
	current := input
	for _, bs := range p.bound {
		if !bs.stage.NeedsApply(current, bs.entry) {
			continue
		}
		out, err := bs.stage.Apply(current, bs.entry)
		if err != nil {
			return "", err
		}
		current = out
	}
	return current, nil
}

func (p *Pipeline) normalizeFused(input string) (string, error) {
	// Cheap pre-scan: if no stage would change anything, return the input
	// unchanged without building the fused chain at all (spec §4.1).
	anyChange := false
	for _, bs := range p.bound {
		if bs.stage.NeedsApply(input, bs.entry) {
			anyChange = true
			break
		}
	}
	if !anyChange {
		return input, nil
	}

	src := stage.NewStringSource(input)
	for _, bs := range p.bound {
		src = bs.fusion.FusedAdapter(bs.entry).Bind(src)
	}
	return stage.Collect(src, len(input)), nil
}
