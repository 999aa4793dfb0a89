package collector

import (
	"context"
	"os"
	"runtime"
	"strings"
)

// HostProbe is an [EnvironmentProbe] for the standalone agent process. It
// reports what the local OS exposes; browser fields stay empty since no
// browser host is attached.
type HostProbe struct{}

// NewHostProbe returns the local-process environment probe.
func NewHostProbe() *HostProbe {
	return &HostProbe{}
}

func (p *HostProbe) Environment(context.Context) (Environment, error) {
	return Environment{
		OSHint:              hostOS(),
		Locale:              hostLocale(),
		HardwareConcurrency: runtime.NumCPU(),
	}, nil
}

func hostOS() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

// hostLocale reads the POSIX locale variables, normalizing "en_US.UTF-8" to
// "en-US". An empty result means the host did not report a locale.
func hostLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if idx := strings.IndexByte(value, '.'); idx >= 0 {
			value = value[:idx]
		}
		return strings.ReplaceAll(value, "_", "-")
	}
	return ""
}
