package repl

// Session is the state carried between commands: the current directory and
// the name shown in the banner. Only cd and up change the directory, and only
// after the target has been validated.
type Session struct {
	dir      string
	username string
}

// NewSession starts a session in dir.
func NewSession(dir, username string) *Session {
	return &Session{dir: dir, username: username}
}

// Dir returns the current directory.
func (s *Session) Dir() string { return s.dir }

// Username returns the name the session was started with.
func (s *Session) Username() string { return s.username }

func (s *Session) adopt(dir string) { s.dir = dir }
