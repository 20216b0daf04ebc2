package widget

// Widget event method names understood by the core.
const (
	MethodSendUtterance  = "send_utterance"
	MethodRunSkillAction = "run_skill_action"
)

// Methods lists every widget event method name.
var Methods = []string{MethodSendUtterance, MethodRunSkillAction}

// Sender is who an utterance is sent on behalf of.
type Sender string

const (
	SenderOwner     Sender = "owner"
	SenderAssistant Sender = "leon"
)

// EventMethod tells the core what to do when a component event fires.
type EventMethod struct {
	MethodName   string `json:"methodName"`
	MethodParams any    `json:"methodParams"`
}

// SendUtteranceParams are the params of a send_utterance method.
type SendUtteranceParams struct {
	From      Sender `json:"from"`
	Utterance string `json:"utterance"`
}

// RunSkillActionParams are the params of a run_skill_action method.
type RunSkillActionParams struct {
	ActionName string         `json:"actionName"`
	Params     map[string]any `json:"params"`
}

// UtteranceOptions tune SendUtterance.
type UtteranceOptions struct {
	From Sender
	Data map[string]any
}

// SendUtterance builds a method that makes the core send the widget content
// at key as an utterance, from the owner unless opts says otherwise.
func (b *Base) SendUtterance(key string, opts *UtteranceOptions) EventMethod {
	var data map[string]any
	from := SenderOwner
	if opts != nil {
		data = opts.Data
		if opts.From != "" {
			from = opts.From
		}
	}
	return EventMethod{
		MethodName: MethodSendUtterance,
		MethodParams: SendUtteranceParams{
			From:      from,
			Utterance: b.Content(key, data),
		},
	}
}

// RunSkillAction builds a method that makes the core run the given fully
// qualified action. The action is not checked here.
func (b *Base) RunSkillAction(actionName string, params map[string]any) EventMethod {
	return EventMethod{
		MethodName: MethodRunSkillAction,
		MethodParams: RunSkillActionParams{
			ActionName: actionName,
			Params:     params,
		},
	}
}
