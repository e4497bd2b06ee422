package main

// Exit codes shared by every command.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, project not found)
	ExitDataError   = 3 // Data error (malformed input, rebuild failure)
)
