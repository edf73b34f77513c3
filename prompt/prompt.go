package prompt

// TurnSeparator sits between the human turn and the assistant label. It is the
// two character sequence backslash + 'n', not a line break; existing prompt
// consumers depend on this exact framing.
const TurnSeparator = `\n`

const (
	contextOpenTag  = "<context>"
	contextCloseTag = "</context>"
)

// Options configures prompt assembly. Empty fields are ignored.
type Options struct {
	// Context is appended inside <context> ... </context> markers.
	Context string
	// HumanLabel and AssistantLabel frame the prompt as a dialogue turn.
	// Both must be set for framing to apply.
	HumanLabel     string
	AssistantLabel string
}

// WithContext appends a context block to the assembled prompt.
func WithContext(ctx string) func(o *Options) {
	return func(o *Options) { o.Context = ctx }
}

// WithLabels frames the prompt as "<human>: <text> \n<assistant>: ".
func WithLabels(human, assistant string) func(o *Options) {
	return func(o *Options) {
		o.HumanLabel = human
		o.AssistantLabel = assistant
	}
}

// Build returns text with the configured dialogue framing and context block
// applied. Without options the text is returned unchanged.
func Build(text string, optFns ...func(o *Options)) string {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	p := text
	if opts.HumanLabel != "" && opts.AssistantLabel != "" {
		p = opts.HumanLabel + ": " + p + " " + TurnSeparator + opts.AssistantLabel + ": "
	}

	if opts.Context != "" {
		p = p + " " + contextOpenTag + " " + opts.Context + " " + contextCloseTag
	}

	return p
}
