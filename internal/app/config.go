package app

// Summarization methods.
const (
	MethodExtractive = "extractive"
	MethodBudgeted   = "budgeted"
)

// Defaults applied when neither flags, config file, nor environment
// provide a value.
const (
	DefaultSentences   = 7
	DefaultTargetWords = 250
)

// Config holds runtime configuration for one summarization run.
type Config struct {
	InputPath  string
	OutputPath string

	// Summarization
	Method      string // MethodExtractive or MethodBudgeted
	Sentences   int    // extractive: sentences to keep
	TargetWords int    // budgeted: word-count ceiling

	// Output artifacts
	WriteReport bool
	EnablePDF   bool

	// Behavior
	ForceSimple bool // lock the tokenizer to simple mode
	DryRun      bool
	Verbose     bool
}
