package fman

// Exit codes follow Unix/GNU conventions:
//   - 0: Success, including end of input and the exit command
//   - 1: General error (the input or output stream could not be used)
//   - 2: CLI usage error (misuse of command line)
//   - 3: Internal panic
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitPanic        = 3
)

// DefaultUsername is shown in the banner when --username is not given.
const DefaultUsername = "Username"

// Messages printed at the prompt.
const (
	MsgInvalidInput    = "Invalid input"
	MsgOperationFailed = "Operation failed"

	MsgWelcome    = "Welcome to the File Manager, %s!"
	MsgFarewell   = "Thank you for using File Manager, %s, goodbye!"
	MsgCurrentDir = "You are currently in %s"
	Prompt        = "> "
)

// StreamBufferSize is the chunk size used by streaming copies, digests and codecs.
const StreamBufferSize = 64 * 1024
