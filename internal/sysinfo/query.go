// Package sysinfo answers the os command's queries about the host.
package sysinfo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vvka-141/fman/pkg/fman"
)

// Options accepted by Query.
const (
	OptEOL          = "--EOL"
	OptCPUs         = "--cpus"
	OptHomeDir      = "--homedir"
	OptUsername     = "--username"
	OptArchitecture = "--architecture"
)

// Query returns the lines to print for option. An unknown option is invalid
// input; a host lookup failure is an I/O error.
func Query(ctx context.Context, host Host, option string) ([]string, error) {
	switch option {
	case OptEOL:
		return []string{strconv.Quote(host.EOL())}, nil
	case OptCPUs:
		cpus, err := host.CPUs(ctx)
		if err != nil {
			return nil, fman.IO("os", "", err)
		}
		lines := make([]string, 0, len(cpus)+1)
		lines = append(lines, fmt.Sprintf("Total CPUs: %d", len(cpus)))
		for i, c := range cpus {
			lines = append(lines, fmt.Sprintf("CPU %d: %s, %sGHz", i+1, c.Model, strconv.FormatFloat(c.MHz/1000, 'f', -1, 64)))
		}
		return lines, nil
	case OptHomeDir:
		home, err := host.HomeDir()
		if err != nil {
			return nil, fman.IO("os", "", err)
		}
		return []string{home}, nil
	case OptUsername:
		name, err := host.Username()
		if err != nil {
			return nil, fman.IO("os", "", err)
		}
		return []string{name}, nil
	case OptArchitecture:
		return []string{host.Arch()}, nil
	default:
		return nil, fman.InvalidInput("os", fmt.Sprintf("unknown option %q", option))
	}
}
