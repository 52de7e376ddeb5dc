package studygen

import "github.com/abhisek/studiz/internal/llm"

// FailureMessage translates a generation error into a user-facing
// line. Configuration problems, provider rejections and unparseable
// model output each read differently.
func FailureMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case llm.IsConfiguration(err):
		return "LLM provider is not configured: " + err.Error()
	case IsMalformed(err):
		return "The model returned content that could not be understood. Try again."
	case llm.IsProvider(err):
		return "The LLM provider rejected the request: " + err.Error()
	default:
		return err.Error()
	}
}
