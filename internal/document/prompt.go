package document

import "strings"

// DefaultSuffix is appended to names that do not already carry it.
const DefaultSuffix = ".txt"

// Prompt asks the user for a document name. ok is false when the user
// dismissed the prompt.
type Prompt interface {
	Ask(defaultValue string) (name string, ok bool)
}

// PromptFunc adapts a function to Prompt.
type PromptFunc func(defaultValue string) (string, bool)

func (f PromptFunc) Ask(defaultValue string) (string, bool) { return f(defaultValue) }

// Answer is a Prompt that always replies name. Shells that collect the
// name asynchronously hand the result to the session through it.
func Answer(name string) Prompt {
	return PromptFunc(func(string) (string, bool) { return name, true })
}

// Cancel is a Prompt that is always dismissed.
var Cancel Prompt = PromptFunc(func(string) (string, bool) { return "", false })

// NormalizeName turns raw prompt input into a storage key. Surrounding
// whitespace is dropped and suffix is appended when missing. ok is false
// for blank input, which counts as a cancellation.
func NormalizeName(raw, suffix string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}
	if suffix != "" && !strings.HasSuffix(name, suffix) {
		name += suffix
	}
	return name, true
}
