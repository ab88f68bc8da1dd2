package tui

import "geocalc/internal/config"

// ConfigReloadedMsg carries a freshly loaded config into the running
// program. The config watcher sends it via Program.Send.
type ConfigReloadedMsg config.Config

// journalWrittenMsg reports the outcome of the background journal append.
type journalWrittenMsg struct {
	err error
}
