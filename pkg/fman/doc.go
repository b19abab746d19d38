// Package fman holds the contracts shared by the file manager packages:
// the Logger interface, listing entry types, the closed error-kind
// enumeration with its sentinel errors, exit codes and prompt messages.
package fman
