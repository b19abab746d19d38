package sysinfo

import (
	"context"
	"os"
	"os/user"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CPU is one logical processor.
type CPU struct {
	Model string
	MHz   float64
}

// Host exposes the environment facts the os command reports.
type Host interface {
	EOL() string
	CPUs(ctx context.Context) ([]CPU, error)
	HomeDir() (string, error)
	Username() (string, error)
	Arch() string
}

// OSHost reads facts from the running system.
type OSHost struct{}

// NewOSHost creates an OSHost.
func NewOSHost() *OSHost {
	return &OSHost{}
}

func (h *OSHost) EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func (h *OSHost) CPUs(ctx context.Context) ([]CPU, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	cpus := make([]CPU, 0, len(infos))
	for _, info := range infos {
		cpus = append(cpus, CPU{Model: info.ModelName, MHz: info.Mhz})
	}
	return cpus, nil
}

func (h *OSHost) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (h *OSHost) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (h *OSHost) Arch() string {
	return ArchToken(runtime.GOARCH)
}

// ArchToken maps a Go architecture name to the conventional token
// (x64, ia32, arm64, ...).
func ArchToken(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	case "ppc64le":
		return "ppc64"
	case "mipsle":
		return "mipsel"
	default:
		return goarch
	}
}

var _ Host = (*OSHost)(nil)
