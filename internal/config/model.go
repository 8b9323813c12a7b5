package config

import "time"

// DefaultExtensions are used when neither the project file nor the command
// line names any.
var DefaultExtensions = []string{".sqf", ".sqm", ".hpp", ".h", ".inc", ".ext"}

// Model is the unified representation of a project configuration.
type Model struct {
	Settings  *Settings
	Macros    []*MacroDefinition
	Reporters []*Reporter
}

// New returns an empty model with default settings.
func New() *Model {
	return &Model{Settings: &Settings{}}
}

// Settings holds the project-wide options.
type Settings struct {
	// Extensions select which files of a directory root are validated.
	Extensions []string
	// IncludeDirs are searched, in order, when an include target is not
	// found next to the including file. Paths are absolute.
	IncludeDirs []string
}

// MacroDefinition is a predefined macro. Params is only meaningful when
// Function is set.
type MacroDefinition struct {
	Name     string
	Params   []string
	Function bool
	Value    string
	File     string
	Line     int
}

// Reporter is a destination diagnostics are published to. Exactly one of the
// type-specific fields is set, matching Type.
type Reporter struct {
	Type     string
	SocketIO *SocketIOReporter
}

// SocketIOReporter publishes diagnostics as socket.io events.
type SocketIOReporter struct {
	URL                string
	Namespace          string
	Event              string
	Timeout            time.Duration
	InsecureSkipVerify bool
}
