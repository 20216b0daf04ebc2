package timer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viveksalimath/Lemo.ai/sdk"
	"github.com/viveksalimath/Lemo.ai/sdk/intent"
	"github.com/viveksalimath/Lemo.ai/sdk/toolbox"
	"go.uber.org/zap"
)

// Action names, unqualified.
const (
	ActionSetTimer   = "set_timer"
	ActionCheckTimer = "check_timer"
)

// Qualified action names.
const (
	SetTimerName   = "utilities:timer:" + ActionSetTimer
	CheckTimerName = "utilities:timer:" + ActionCheckTimer
)

// DefaultSeconds is used when the utterance carries no duration.
const DefaultSeconds = 60

const durationEntity = "duration"

func init() {
	sdk.Register(SetTimerName, SetTimer)
	sdk.Register(CheckTimerName, CheckTimer)
}

// SetTimer starts a timer for the duration found in the utterance.
func SetTimer(ctx context.Context, b *sdk.Bridge, p sdk.Params) error {
	seconds := durationSeconds(p.CurrentEntities)
	b.Logger().Debug("setting timer", zap.Int("seconds", seconds))

	return b.Answer(ctx, sdk.Input{
		Key:    "timer_set",
		Data:   map[string]any{"seconds": seconds},
		Widget: NewWidget(b.WidgetEnv(), Params{Seconds: seconds}, ""),
	})
}

// CheckTimer re-renders the timer widget the web app asks to refresh.
func CheckTimer(ctx context.Context, b *sdk.Bridge, p sdk.Params) error {
	id, ok := toolbox.GetWidgetID(b.Intent)
	if !ok {
		return b.Answer(ctx, sdk.Input{Key: "no_timer"})
	}

	seconds := durationSeconds(p.CurrentEntities)
	return b.Answer(ctx, sdk.Input{
		Widget: NewWidget(b.WidgetEnv(), Params{Seconds: seconds, Refreshed: true}, id),
		Core:   map[string]any{"isInActionLoop": false},
	})
}

// durationSeconds reads the first usable duration entity. Its resolution
// lists candidate values in seconds:
//
//	{"values": [{"timex": "PT5M", "type": "duration", "value": "300"}]}
func durationSeconds(entities []intent.Entity) int {
	for _, e := range entities {
		if e.Entity != durationEntity || len(e.Resolution) == 0 {
			continue
		}
		seconds, err := parseResolution(e.Resolution)
		if err == nil && seconds > 0 {
			return seconds
		}
	}
	return DefaultSeconds
}

func parseResolution(raw json.RawMessage) (int, error) {
	var res struct {
		Values []struct {
			Value json.Number `json:"value"`
		} `json:"values"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return 0, fmt.Errorf("decoding duration resolution: %w", err)
	}
	if len(res.Values) == 0 {
		return 0, fmt.Errorf("duration resolution has no values")
	}
	seconds, err := res.Values[0].Value.Float64()
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", res.Values[0].Value, err)
	}
	return int(seconds), nil
}
