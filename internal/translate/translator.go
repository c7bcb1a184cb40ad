package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jsonschema2crateo/internal/config"
	"jsonschema2crateo/internal/diagnostic"
	"jsonschema2crateo/internal/expand"
	"jsonschema2crateo/internal/profile"
	"jsonschema2crateo/internal/resolve"
	"jsonschema2crateo/internal/schema"
	"jsonschema2crateo/internal/vocab"
)

// DatasetClass is the name of the configured Dataset class.
const DatasetClass = "Dataset"

var (
	// ErrMissingRootDataset is returned when no graph node carries a
	// $validation block.
	ErrMissingRootDataset = errors.New("no graph node carries a $validation block: missing root dataset")
	// ErrStrictMode is returned when strict mode turns diagnostics into a failure.
	ErrStrictMode = errors.New("strict mode: translation failed with diagnostics")
)

// Options configures a Translator.
type Options struct {
	// Config supplies the static fragments and mappings. Nil means config.Default().
	Config *config.Config
	// Vocabulary answers membership for the description namespace. It may be nil.
	Vocabulary *vocab.Vocabulary
	// Prober checks namespace candidates. Nil disables network probes.
	Prober expand.Prober
	Logger *slog.Logger
	// Strict fails the run on any warning.
	Strict bool
	// AllowMissingRoot produces a profile without root class instead of
	// failing with ErrMissingRootDataset.
	AllowMissingRoot bool
}

// Translator converts schema documents into profiles. It holds no state
// between runs.
type Translator struct {
	opts     Options
	cfg      *config.Config
	resolver *resolve.Resolver
	logger   *slog.Logger
}

// Result is the outcome of a translation run.
type Result struct {
	// Profile is nil when the run failed.
	Profile     *profile.Profile
	Diagnostics diagnostic.Diagnostics
}

// New creates a Translator.
func New(opts Options) *Translator {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Translator{
		opts:     opts,
		cfg:      cfg,
		resolver: resolve.New(cfg.TypeNames),
		logger:   logger,
	}
}

// Translate converts doc into a profile. The run is atomic: on error the
// returned Result, if any, carries diagnostics but no profile.
func (t *Translator) Translate(ctx context.Context, doc *schema.Document) (*Result, error) {
	if doc == nil {
		return nil, errors.New("schema document is required")
	}

	r := t.newRun(doc)

	if t.opts.Vocabulary == nil {
		r.diags.AddInfo(diagnostic.CodeVocabularyUnset,
			"no external vocabulary: bare names are never matched against "+t.cfg.Vocabulary.Namespace, "", "")
	}

	r.addClass(DatasetClass, profile.NewClass(t.cfg.DatasetClass.SubClassOf, t.cfg.DatasetClass.Inputs), "configuration")

	for i := range doc.Graph {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node := &doc.Graph[i]
		if err := r.translateNode(ctx, node); err != nil {
			return nil, fmt.Errorf("graph node %q: %w", node.ID, err)
		}
	}

	if r.root == nil {
		if !t.opts.AllowMissingRoot {
			return &Result{Diagnostics: r.diags}, ErrMissingRootDataset
		}

		r.diags.AddWarning(diagnostic.CodeMissingRoot,
			"no graph node carries a $validation block; root dataset fields are empty", "", "")
	}

	r.checkTypes()
	r.reportUnresolved()

	if t.opts.Strict {
		r.diags.Escalate()
	}

	if r.diags.HasErrors() {
		return &Result{Diagnostics: r.diags}, fmt.Errorf("%w: %w", ErrStrictMode, r.diags.Error())
	}

	p := r.assemble()

	t.logger.InfoContext(ctx, "translation finished",
		slog.String("root", p.Metadata.Name),
		slog.Int("classes", len(p.Classes)),
		slog.Int("warnings", len(r.diags.Warnings)))

	return &Result{Profile: p, Diagnostics: r.diags}, nil
}

// run is the state of one Translate call.
type run struct {
	*Translator

	expander *expand.Expander
	diags    diagnostic.Diagnostics
	classes  map[string]profile.Class
	// origins records where each class came from, for collision reports.
	origins map[string]string
	root    *rootDataset
}

// rootDataset is filled by the first node with a $validation block.
type rootDataset struct {
	class       string
	name        string
	description string
}

func (t *Translator) newRun(doc *schema.Document) *run {
	return &run{
		Translator: t,
		expander: expand.New(expand.Options{
			Context:             doc.Context,
			Lookup:              doc,
			PrefixOverrides:     t.cfg.PrefixOverrides,
			DescriptionPrefix:   t.cfg.DescriptionPrefix,
			Vocabulary:          t.opts.Vocabulary,
			VocabularyNamespace: t.cfg.Vocabulary.Namespace,
			Prober:              t.opts.Prober,
			Logger:              t.logger,
		}),
		classes: make(map[string]profile.Class),
		origins: make(map[string]string),
	}
}
