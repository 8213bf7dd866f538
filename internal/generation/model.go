// Package generation produces document content from a ranked list of
// text-generation models, falling back to the next model on failure.
package generation

// Model describes one entry in the ranked fallback chain.
type Model struct {
	Name      string `json:"name" toml:"name"`
	ID        string `json:"model" toml:"model"`
	Available bool   `json:"available" toml:"available"`
}

// DefaultModels is the ranked Gemini chain used when none is configured.
func DefaultModels() []Model {
	return []Model{
		{Name: "Gemini 2.5 Flash", ID: "gemini-2.5-flash", Available: true},
		{Name: "Gemini 2.0 Flash Experimental", ID: "gemini-2.0-flash-exp", Available: true},
		{Name: "Gemini 2.0 Flash", ID: "gemini-2.0-flash", Available: true},
		{Name: "Gemini 2.0 Flash Lite", ID: "gemini-2.0-flash-lite", Available: true},
		{Name: "Gemini 1.5 Flash", ID: "gemini-1.5-flash", Available: true},
		{Name: "Gemini 1.5 Flash 8B", ID: "gemini-1.5-flash-8b", Available: true},
	}
}

// Request carries the user-facing inputs for one generation.
type Request struct {
	Title    string
	Type     string
	Category string
	Prompt   string
}
