package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/viveksalimath/Lemo.ai/sdk/answer"
	"github.com/viveksalimath/Lemo.ai/sdk/intent"
	"github.com/viveksalimath/Lemo.ai/sdk/random"
	"github.com/viveksalimath/Lemo.ai/sdk/skillconfig"
	"github.com/viveksalimath/Lemo.ai/sdk/widget"
	"go.uber.org/zap"
)

// DefaultDelay is the pause before an answer is written. The core reads the
// bridge's stdout in chunks and may merge back-to-back answers otherwise.
const DefaultDelay = 100 * time.Millisecond

// WidgetCode is the output code of answers made of a widget only.
const WidgetCode = "widget"

const childrenHint = "Hint: make sure that widget children components are a list. " +
	"E.g. widget.Props{\"children\": []*widget.Component{text}}"

// ErrNilWidget is returned when an answer carries a nil widget pointer.
var ErrNilWidget = errors.New("widget is nil")

// Input is what an action answers with.
type Input struct {
	// Key is an answer key from the skill config, or a raw answer.
	// Empty means no answer text.
	Key  string
	Data map[string]any
	// Widget is rendered and attached to the answer when set.
	Widget widget.Widget
	// Core is passed through to the core unchanged.
	Core any
}

// Envelope is the JSON document written for each answer: the intent object
// fields, passed through unchanged, plus the output.
type Envelope struct {
	*intent.Object
	Output Output `json:"output"`
}

// MarshalJSON merges the intent object fields with "output".
func (e Envelope) MarshalJSON() ([]byte, error) {
	fields, err := e.Object.Fields()
	if err != nil {
		return nil, err
	}
	output, err := json.Marshal(e.Output)
	if err != nil {
		return nil, err
	}
	fields["output"] = output
	return json.Marshal(fields)
}

// Output describes the outcome of the action.
type Output struct {
	Codes  string        `json:"codes"`
	Answer any           `json:"answer"`
	Core   any           `json:"core"`
	Widget *WidgetOutput `json:"widget,omitempty"`
}

// WidgetOutput is a rendered widget.
type WidgetOutput struct {
	ActionName      string            `json:"actionName"`
	Widget          string            `json:"widget"`
	ID              string            `json:"id"`
	OnFetch         *widget.OnFetch   `json:"onFetch"`
	ComponentTree   *widget.Component `json:"componentTree"`
	SupportedEvents []string          `json:"supportedEvents"`
}

// Bridge answers the core on behalf of one running action.
type Bridge struct {
	Intent *intent.Object
	Config *skillconfig.Config

	resolver *answer.Resolver
	out      io.Writer
	log      *zap.Logger
	delay    time.Duration
	rand     random.Source
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithOutput sets where answers are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(b *Bridge) { b.out = w }
}

// WithLogger sets the diagnostics logger (default: discard).
func WithLogger(log *zap.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

// WithDelay sets the pause before each answer is written. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(b *Bridge) { b.delay = d }
}

// WithRand sets the randomness source for answer variants and ids.
func WithRand(src random.Source) Option {
	return func(b *Bridge) { b.rand = src }
}

// New returns a Bridge for the given intent object and skill config.
func New(obj *intent.Object, cfg *skillconfig.Config, opts ...Option) *Bridge {
	b := &Bridge{
		Intent: obj,
		Config: cfg,
		out:    os.Stdout,
		log:    zap.NewNop(),
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rand == nil {
		b.rand = random.Default()
	}
	b.resolver = answer.NewResolver(cfg, b.rand, b.log)
	return b
}

// WidgetEnv returns the environment widgets of this action are built with.
func (b *Bridge) WidgetEnv() widget.Env {
	return widget.Env{Intent: b.Intent, Config: b.Config, Rand: b.rand}
}

// Logger returns the bridge logger, for actions that want to log.
func (b *Bridge) Logger() *zap.Logger {
	return b.log
}

// SetAnswerData resolves an answer key with data applied.
//
//	b.SetAnswerData("welcome", map[string]any{"name": "Louis"}) // "Welcome Louis"
func (b *Bridge) SetAnswerData(key string, data map[string]any) (skillconfig.Template, error) {
	return b.resolver.Resolve(key, data)
}

// Answer sends an answer to the core. On failure nothing is written: the
// error is logged and returned, and the core treats the missing line as a
// failed action.
func (b *Bridge) Answer(ctx context.Context, in Input) error {
	payload, err := b.compose(in)
	if err != nil {
		return b.fail(err)
	}

	if err := wait(ctx, b.delay); err != nil {
		return b.fail(err)
	}

	if err := b.write(payload); err != nil {
		return b.fail(err)
	}
	return nil
}

// Compose builds the envelope for in without writing it.
func (b *Bridge) Compose(in Input) (*Envelope, error) {
	env := &Envelope{
		Object: b.Intent,
		Output: Output{
			Codes:  in.Key,
			Answer: "",
			Core:   in.Core,
		},
	}
	if in.Widget != nil && in.Key == "" {
		env.Output.Codes = WidgetCode
	}

	if in.Key != "" {
		resolved, err := b.resolver.Resolve(in.Key, in.Data)
		if err != nil {
			return nil, err
		}
		env.Output.Answer = resolved
	}

	if in.Widget != nil {
		if isNilWidget(in.Widget) {
			return nil, fmt.Errorf("widget %T: %w", in.Widget, ErrNilWidget)
		}
		info := in.Widget.Info()
		if info == nil {
			return nil, fmt.Errorf("widget %T has no base: %w", in.Widget, ErrNilWidget)
		}
		env.Output.Widget = &WidgetOutput{
			ActionName:      b.actionName(),
			Widget:          info.Type,
			ID:              info.ID,
			OnFetch:         info.OnFetch,
			ComponentTree:   widget.NewWrapper(b.rand, info.WrapperProps, in.Widget.Render()),
			SupportedEvents: widget.SupportedEvents,
		}
	}
	return env, nil
}

func (b *Bridge) compose(in Input) ([]byte, error) {
	env, err := b.Compose(in)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("serializing answer: %w", err)
	}
	return payload, nil
}

func (b *Bridge) actionName() string {
	if b.Intent == nil {
		return ""
	}
	return b.Intent.ActionName()
}

func (b *Bridge) write(payload []byte) error {
	payload = append(payload, '\n')
	if _, err := b.out.Write(payload); err != nil {
		return fmt.Errorf("writing answer: %w", err)
	}
	if f, ok := b.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flushing answer: %w", err)
		}
	}
	return nil
}

func (b *Bridge) fail(err error) error {
	b.log.Error("creating answer", zap.Error(err))
	if needsChildrenHint(err) {
		b.log.Warn(childrenHint)
	}
	return err
}

// needsChildrenHint reports errors caused by a widget tree that cannot be
// serialized, most often a single component passed as children.
func needsChildrenHint(err error) bool {
	if errors.Is(err, widget.ErrChildrenNotList) {
		return true
	}
	var typeErr *json.UnsupportedTypeError
	var valueErr *json.UnsupportedValueError
	return errors.As(err, &typeErr) || errors.As(err, &valueErr)
}

// isNilWidget reports a typed nil pointer stored in the interface. Calling
// promoted Base methods on it would panic.
func isNilWidget(w widget.Widget) bool {
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
