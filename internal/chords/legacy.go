package chords

// defaultEngine backs the package-level convenience functions. The engine is
// immutable after construction, so sharing one instance across goroutines
// needs no synchronization and behaves identically to a caller-owned one.
var defaultEngine = NewEngine()

// Default returns the shared engine instance. Handlers that want explicit
// dependency injection take an *Engine instead of calling the package
// functions.
func Default() *Engine {
	return defaultEngine
}

// Parse parses a chord symbol with the shared engine.
func Parse(raw string) ParseResult {
	return defaultEngine.Parse(raw)
}

// IsValidChord reports whether text parses as a valid chord symbol.
func IsValidChord(text string) bool {
	return defaultEngine.Parse(text).IsValid
}

// ParseChord parses a chord symbol and returns the result in the legacy
// map shape, nested components included.
func ParseChord(text string) map[string]any {
	result := defaultEngine.Parse(text)
	return result.ToMap()
}

// ParseChords parses each symbol independently, preserving input order.
func (e *Engine) ParseChords(texts []string) []ParseResult {
	results := make([]ParseResult, len(texts))
	for i, text := range texts {
		results[i] = e.Parse(text)
	}
	return results
}

// ParseChords parses each symbol with the shared engine.
func ParseChords(texts []string) []ParseResult {
	return defaultEngine.ParseChords(texts)
}

// EnharmonicEquivalents resolves alternate spellings with the shared engine.
func EnharmonicEquivalents(root, accidental string) []string {
	return defaultEngine.EnharmonicEquivalents(root, accidental)
}
