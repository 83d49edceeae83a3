// Package profile loads declarative pipeline presets — named bundles of a
// language tag and an ordered stage list — from a YAML document, the same
// way the teacher's manifest.go loads a dictionary's metadata. This is
// outer-surface convenience on top of pkg/pipeline.Build, not part of the
// normalization core: it never touches the hot Normalize path.
package profile

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/pipeline"
	"github.com/hazyhaar/normy/pkg/stage"
)

// Spec is one named profile's YAML shape.
type Spec struct {
	Language string   `yaml:"language"`
	Stages   []string `yaml:"stages"`
}

// Document is the top-level YAML shape: a map of profile name to Spec.
type Document struct {
	Profiles map[string]Spec `yaml:"profiles"`
}

// stageFactories names every stage constructible by string key — the
// closed set a YAML profile is allowed to reference.
var stageFactories = map[string]func() stage.Stage{
	"nfc":                          func() stage.Stage { return stage.NFC },
	"nfd":                          func() stage.Stage { return stage.NFD },
	"nfkc":                         func() stage.Stage { return stage.NFKC },
	"nfkd":                         func() stage.Stage { return stage.NFKD },
	"case_fold":                    func() stage.Stage { return stage.CaseFold{} },
	"lower_case":                   func() stage.Stage { return stage.LowerCase{} },
	"transliterate":                func() stage.Stage { return stage.Transliterate{} },
	"remove_diacritics":            func() stage.Stage { return stage.RemoveDiacritics{} },
	"unify_width":                  func() stage.Stage { return stage.UnifyWidth{} },
	"normalize_punctuation":        func() stage.Stage { return stage.NormalizePunctuation{} },
	"strip_control_chars":          func() stage.Stage { return stage.StripControlChars{} },
	"strip_format_controls":        func() stage.Stage { return stage.StripFormatControls{} },
	"collapse_whitespace":          func() stage.Stage { return stage.CollapseWhitespace{} },
	"collapse_whitespace_unicode":  func() stage.Stage { return stage.CollapseWhitespace{Unicode: true} },
	"trim_whitespace":              func() stage.Stage { return stage.TrimWhitespace{} },
	"trim_whitespace_unicode":      func() stage.Stage { return stage.TrimWhitespace{Unicode: true} },
	"normalize_whitespace_full":    func() stage.Stage { return stage.NormalizeWhitespaceFull{} },
	"segment_words":                func() stage.Stage { return stage.SegmentWords{} },
	"strip_html":                   func() stage.Stage { return stage.StripHtml{} },
	"strip_markdown":               func() stage.Stage { return stage.StripMarkdown{} },
}

// Registry holds built pipelines for every profile in a loaded document,
// guarded the way the teacher's dict.Registry guards its dictionary map —
// a single RWMutex covering an occasional Reload against many concurrent
// Build lookups.
type Registry struct {
	mu    sync.RWMutex
	built map[string]*pipeline.Pipeline
	log   *slog.Logger
}

// NewRegistry creates an empty registry. logger defaults to slog.Default()
// when nil.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{built: map[string]*pipeline.Pipeline{}, log: logger}
}

// Load parses a YAML document and builds every profile's pipeline,
// replacing the registry's current contents atomically.
func (r *Registry) Load(data []byte) error {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("profile: parse manifest: %w", err)
	}

	built := make(map[string]*pipeline.Pipeline, len(doc.Profiles))
	for name, spec := range doc.Profiles {
		p, err := buildSpec(spec)
		if err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
		built[name] = p
	}

	r.mu.Lock()
	r.built = built
	r.mu.Unlock()
	r.log.Info("profile registry loaded", "count", len(built))
	return nil
}

func buildSpec(spec Spec) (*pipeline.Pipeline, error) {
	stages := make([]stage.Stage, 0, len(spec.Stages))
	for _, key := range spec.Stages {
		factory, ok := stageFactories[key]
		if !ok {
			return nil, &pipeline.ConfigError{Stage: key, Lang: spec.Language, Reason: "unknown stage name"}
		}
		stages = append(stages, factory())
	}
	return pipeline.Build(lang.Tag(spec.Language), stages...)
}

// Build returns the pipeline for the named profile.
func (r *Registry) Build(name string) (*pipeline.Pipeline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.built[name]
	if !ok {
		return nil, fmt.Errorf("profile: unknown profile %q", name)
	}
	return p, nil
}

// Names returns the loaded profile names, sorted for deterministic output.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.built))
	for name := range r.built {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
