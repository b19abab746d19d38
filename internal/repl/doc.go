// Package repl implements the interactive session: it reads one line at a
// time, parses it into a command, runs the command to completion against the
// session's current directory, and prints the result followed by a footer
// naming the current directory.
//
// Commands never overlap. The next prompt is printed only after the previous
// command, including any directory change it causes, has finished.
package repl
