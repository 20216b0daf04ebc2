// Package answer resolves answer templates from a skill config: it picks a
// variant and fills %placeholders% from caller data, then from the skill's
// global variables.
package answer

import (
	"errors"
	"fmt"

	"github.com/viveksalimath/Lemo.ai/sdk/placeholder"
	"github.com/viveksalimath/Lemo.ai/sdk/random"
	"github.com/viveksalimath/Lemo.ai/sdk/skillconfig"
	"go.uber.org/zap"
)

// ErrNoVariants is returned when an answer key maps to an empty list.
var ErrNoVariants = errors.New("answer has no variants")

// Resolver resolves answer keys against one skill config.
type Resolver struct {
	config *skillconfig.Config
	rand   random.Source
	log    *zap.Logger
}

// NewResolver returns a resolver. A nil source uses random.Default and a nil
// logger discards output.
func NewResolver(cfg *skillconfig.Config, src random.Source, log *zap.Logger) *Resolver {
	if src == nil {
		src = random.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{config: cfg, rand: src, log: log}
}

// Resolve returns the answer for key with data applied. A key that is not a
// configured answer is treated as a raw answer and returned verbatim.
// Resolution errors are logged before being returned.
func (r *Resolver) Resolve(key string, data map[string]any) (skillconfig.Template, error) {
	t, err := r.resolve(key, data)
	if err != nil {
		r.log.Error("setting answer data", zap.String("key", key), zap.Error(err))
		return skillconfig.Template{}, err
	}
	return t, nil
}

func (r *Resolver) resolve(key string, data map[string]any) (skillconfig.Template, error) {
	variants, ok := r.config.Answer(key)
	if !ok {
		return skillconfig.Plain(key), nil
	}

	if len(variants.Items) == 0 {
		return skillconfig.Template{}, fmt.Errorf("answer %q: %w", key, ErrNoVariants)
	}
	t := variants.Items[0]
	if variants.List {
		t = random.Pick(r.rand, variants.Items)
	}

	t, err := substitute(t, data)
	if err != nil {
		return skillconfig.Template{}, fmt.Errorf("applying data to answer %q: %w", key, err)
	}

	if r.config.Variables != nil {
		t, err = substitute(t, r.config.Variables)
		if err != nil {
			return skillconfig.Template{}, fmt.Errorf("applying variables to answer %q: %w", key, err)
		}
	}

	return t, nil
}

// substitute applies one map to both parts of a template. t is a copy, so
// the config is never modified.
func substitute(t skillconfig.Template, data map[string]any) (skillconfig.Template, error) {
	if len(data) == 0 {
		return t, nil
	}
	text, err := placeholder.Apply(t.Text, data)
	if err != nil {
		return t, err
	}
	speech, err := placeholder.Apply(t.Speech, data)
	if err != nil {
		return t, err
	}
	t.Text, t.Speech = text, speech
	return t, nil
}
