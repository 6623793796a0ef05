package views

// Engine identifies the assistant CLI a screen is bound to.
type Engine string

const (
	EngineNone   Engine = ""
	EngineClaude Engine = "claude" // The official CLI
	EngineCodex  Engine = "codex"
	EngineGemini Engine = "gemini"
)

func (e Engine) GetName() string {
	switch e {
	case EngineNone:
		return "None"
	case EngineClaude:
		return "Claude"
	case EngineCodex:
		return "Codex"
	case EngineGemini:
		return "Gemini"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known engine or EngineNone.
func (e Engine) Valid() bool {
	switch e {
	case EngineNone, EngineClaude, EngineCodex, EngineGemini:
		return true
	}
	return false
}
