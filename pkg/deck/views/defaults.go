package views

import "github.com/enginedeck/deck/pkg/deck/navigation"

// Built-in screens of the shell.
const (
	Home           navigation.View = navigation.Home
	Projects       navigation.View = "projects"
	Sessions       navigation.View = "sessions"
	ClaudeSession  navigation.View = "claude-session"
	CodexSession   navigation.View = "codex-session"
	GeminiSession  navigation.View = "gemini-session"
	Editor         navigation.View = "editor"
	ClaudeMDEditor navigation.View = "claude-md-editor"
	Settings       navigation.View = "settings"
	Providers      navigation.View = "providers"
	CodexConfig    navigation.View = "codex-config"
	MCP            navigation.View = "mcp"
	Usage          navigation.View = "usage-dashboard"
	Agents         navigation.View = "agents"
)

var defaultDefinitions = []Definition{
	{ID: Home, Title: "Home"},
	{ID: Projects},
	{ID: Sessions},
	{ID: ClaudeSession, Title: "Claude Session", Engine: EngineClaude},
	{ID: CodexSession, Title: "Codex Session", Engine: EngineCodex},
	{ID: GeminiSession, Title: "Gemini Session", Engine: EngineGemini},
	{ID: Editor},
	{ID: ClaudeMDEditor, Title: "CLAUDE.md Editor", Engine: EngineClaude},
	{ID: Settings},
	{ID: Providers, Title: "API Providers", Engine: EngineClaude},
	{ID: CodexConfig, Title: "Codex Configuration", Engine: EngineCodex},
	{ID: MCP, Title: "MCP Servers"},
	{ID: Usage},
	{ID: Agents},
}

// Default returns the catalog of built-in screens, rooted at Home.
func Default() *Catalog {
	c, err := NewCatalog(Home, defaultDefinitions...)
	if err != nil {
		panic(err) // built-in definitions are static
	}
	return c
}
