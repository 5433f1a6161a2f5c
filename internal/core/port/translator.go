package port

type Translator interface {
	// Translate looks up key in the active locale and formats it with args. Unknown keys are returned as-is.
	Translate(key string, args ...any) string
}
