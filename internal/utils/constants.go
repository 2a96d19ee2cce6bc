package utils

// Messages shared by the entry point and the command layer.
const (
	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage is logged when the CLI returns an error.
	ApplicationExecutionFailedMessage = "ctxbundle failed"
)
