package engine

import "github.com/pkg/errors"

var (
	ErrDuplicateAlias = errors.New("engine alias already registered")
	ErrUnknownAlias   = errors.New("unknown engine alias")
)

// Registry holds named engine implementations per stage family. Aliases
// are unique within a family; the workflow resolves them once, at
// construction time.
type Registry struct {
	trainers   map[string]Trainer
	evaluators map[string]Evaluator
	adjusters  map[string]Adjuster
	renderers  map[string]Renderer
	exporters  map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		trainers:   make(map[string]Trainer),
		evaluators: make(map[string]Evaluator),
		adjusters:  make(map[string]Adjuster),
		renderers:  make(map[string]Renderer),
		exporters:  make(map[string]Exporter),
	}
}

// Builtin returns a registry preloaded with the reference engine set.
func Builtin() *Registry {
	reg := NewRegistry()

	// The reference engines carry distinct aliases, registration cannot
	// collide.
	_ = reg.RegisterTrainer(NewLeastSquares())
	_ = reg.RegisterEvaluator(NewMSE())
	_ = reg.RegisterEvaluator(NewSummary())
	_ = reg.RegisterEvaluator(NewStatisticalParity())
	_ = reg.RegisterAdjuster(NewResidualAdjuster())
	_ = reg.RegisterRenderer(NewMeanMetric())
	_ = reg.RegisterExporter(NewXLSXExporter())
	_ = reg.RegisterExporter(NewTextFileExporter())

	return reg
}

func (r *Registry) RegisterTrainer(t Trainer) error {
	if _, ok := r.trainers[t.Alias()]; ok {
		return errors.Wrapf(ErrDuplicateAlias, "trainer %q", t.Alias())
	}
	r.trainers[t.Alias()] = t

	return nil
}

func (r *Registry) RegisterEvaluator(e Evaluator) error {
	if _, ok := r.evaluators[e.Alias()]; ok {
		return errors.Wrapf(ErrDuplicateAlias, "evaluator %q", e.Alias())
	}
	r.evaluators[e.Alias()] = e

	return nil
}

func (r *Registry) RegisterAdjuster(a Adjuster) error {
	if _, ok := r.adjusters[a.Alias()]; ok {
		return errors.Wrapf(ErrDuplicateAlias, "adjuster %q", a.Alias())
	}
	r.adjusters[a.Alias()] = a

	return nil
}

func (r *Registry) RegisterRenderer(rd Renderer) error {
	if _, ok := r.renderers[rd.Alias()]; ok {
		return errors.Wrapf(ErrDuplicateAlias, "renderer %q", rd.Alias())
	}
	r.renderers[rd.Alias()] = rd

	return nil
}

func (r *Registry) RegisterExporter(e Exporter) error {
	if _, ok := r.exporters[e.Alias()]; ok {
		return errors.Wrapf(ErrDuplicateAlias, "exporter %q", e.Alias())
	}
	r.exporters[e.Alias()] = e

	return nil
}

func (r *Registry) Trainer(alias string) (Trainer, error) {
	t, ok := r.trainers[alias]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlias, "trainer %q", alias)
	}

	return t, nil
}

func (r *Registry) Evaluator(alias string) (Evaluator, error) {
	e, ok := r.evaluators[alias]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlias, "evaluator %q", alias)
	}

	return e, nil
}

func (r *Registry) Adjuster(alias string) (Adjuster, error) {
	a, ok := r.adjusters[alias]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlias, "adjuster %q", alias)
	}

	return a, nil
}

func (r *Registry) Renderer(alias string) (Renderer, error) {
	rd, ok := r.renderers[alias]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlias, "renderer %q", alias)
	}

	return rd, nil
}

func (r *Registry) Exporter(alias string) (Exporter, error) {
	e, ok := r.exporters[alias]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlias, "exporter %q", alias)
	}

	return e, nil
}
