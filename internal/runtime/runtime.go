package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/viveksalimath/Lemo.ai/internal/branding"
	"github.com/viveksalimath/Lemo.ai/internal/manifest"
	"github.com/viveksalimath/Lemo.ai/internal/paths"
	"github.com/viveksalimath/Lemo.ai/sdk"
	"github.com/viveksalimath/Lemo.ai/sdk/intent"
	"github.com/viveksalimath/Lemo.ai/sdk/random"
	"github.com/viveksalimath/Lemo.ai/sdk/skillconfig"
	"go.uber.org/zap"
)

// ErrWrongBridge is returned for skills written for another bridge.
var ErrWrongBridge = errors.New("skill targets another bridge")

// ErrUndeclaredAction is returned when the manifest lists actions and the
// intent's action is not one of them.
var ErrUndeclaredAction = errors.New("action not declared in skill manifest")

// Runner executes skill actions.
type Runner struct {
	// Registry holds the actions; nil means sdk.DefaultRegistry.
	Registry *sdk.Registry
	// SkillsRoot is the directory holding <domain>/<skill>/ skill dirs.
	SkillsRoot string
	// Out receives the answers; nil means os.Stdout.
	Out io.Writer
	// Log receives diagnostics; nil discards them.
	Log *zap.Logger
	// Delay is the pause before each answer.
	Delay time.Duration
	// Version is the bridge version checked against bridge_version.
	Version string
	// Rand overrides the randomness source, for tests.
	Rand random.Source
}

// Skill is everything loaded from disk for one action run.
type Skill struct {
	Dir      string
	Manifest *manifest.SkillManifest
	Config   *skillconfig.Config
}

// Run loads the intent object at intentPath and runs its action.
func (r *Runner) Run(ctx context.Context, intentPath string) error {
	obj, err := intent.Load(intentPath)
	if err != nil {
		return fmt.Errorf("loading intent: %w", err)
	}
	if err := r.RunIntent(ctx, obj); err != nil {
		return fmt.Errorf("running %q skill %q action: %w", obj.Skill, obj.Action, err)
	}
	return nil
}

// RunIntent runs the action named by an already parsed intent object.
func (r *Runner) RunIntent(ctx context.Context, obj *intent.Object) error {
	log := r.logger().With(zap.String("action", obj.ActionName()))

	skill, err := r.LoadSkill(obj)
	if err != nil {
		return err
	}

	fn, err := r.registry().Lookup(obj.ActionName())
	if err != nil {
		return err
	}

	opts := []sdk.Option{
		sdk.WithOutput(r.output()),
		sdk.WithLogger(log),
		sdk.WithDelay(r.Delay),
	}
	if r.Rand != nil {
		opts = append(opts, sdk.WithRand(r.Rand))
	}
	b := sdk.New(obj, skill.Config, opts...)

	log.Debug("running action", zap.String("skill_dir", skill.Dir))
	return fn(ctx, b, sdk.ParamsFrom(obj))
}

// LoadSkill reads and checks the manifest and config of the intent's skill.
func (r *Runner) LoadSkill(obj *intent.Object) (*Skill, error) {
	dir := paths.SkillDir(r.SkillsRoot, obj.Domain, obj.Skill)

	mpath, err := manifest.FindSkillManifest(dir)
	if err != nil {
		return nil, err
	}
	m, err := manifest.ParseSkill(mpath)
	if err != nil {
		return nil, err
	}
	if want := branding.BridgeName(); m.Bridge != want {
		return nil, fmt.Errorf("%s uses the %q bridge, this is the %q bridge: %w", m.Name, m.Bridge, want, ErrWrongBridge)
	}
	if !m.HasAction(obj.Action) {
		return nil, fmt.Errorf("%q: %w", obj.Action, ErrUndeclaredAction)
	}
	if err := manifest.CheckBridgeVersion(m.BridgeVersion, r.version()); err != nil {
		return nil, err
	}

	cpath, err := paths.SkillConfigPath(r.SkillsRoot, obj.Domain, obj.Skill, obj.ConfigLang())
	if err != nil {
		return nil, err
	}
	cfg, err := skillconfig.Load(cpath)
	if err != nil {
		return nil, err
	}

	return &Skill{Dir: dir, Manifest: m, Config: cfg}, nil
}

func (r *Runner) registry() *sdk.Registry {
	if r.Registry == nil {
		return sdk.DefaultRegistry
	}
	return r.Registry
}

func (r *Runner) output() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r *Runner) version() string {
	if r.Version == "" {
		return manifest.DevVersion
	}
	return r.Version
}
