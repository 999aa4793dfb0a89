package collector

import (
	"runtime"
	"strings"

	"github.com/ananta-labs/tabsync/models"
)

// buildDeviceInfo derives the device_info payload from a raw environment
// report. The user-agent string is parsed for OS and browser brand/version;
// a zero hardware-concurrency report falls back to the local CPU count.
func buildDeviceInfo(env Environment) models.DeviceInfo {
	osName, browser, version := parseUserAgent(env.UserAgent)
	if osName == "unknown" && env.OSHint != "" {
		osName = env.OSHint
	}

	concurrency := env.HardwareConcurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	return models.DeviceInfo{
		OS:                  osName,
		Browser:             browser,
		BrowserVersion:      version,
		ScreenWidth:         env.ScreenWidth,
		ScreenHeight:        env.ScreenHeight,
		Locale:              env.Locale,
		HardwareConcurrency: concurrency,
		TouchCapable:        env.TouchCapable,
	}
}

// parseUserAgent extracts (os, browser, version) from a user-agent string.
//
// Brand detection order matters: Chromium derivatives embed "Chrome/" in
// their UA, so Edge and Opera must be checked first, and Safari last
// because Chrome UAs also contain "Safari/".
func parseUserAgent(ua string) (osName, browser, version string) {
	osName = "unknown"
	browser = "unknown"

	switch {
	case strings.Contains(ua, "Windows NT"):
		osName = "Windows"
	case strings.Contains(ua, "Android"):
		osName = "Android"
	case strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad"):
		osName = "iOS"
	case strings.Contains(ua, "Mac OS X"):
		osName = "macOS"
	case strings.Contains(ua, "CrOS"):
		osName = "ChromeOS"
	case strings.Contains(ua, "Linux"):
		osName = "Linux"
	}

	switch {
	case strings.Contains(ua, "Edg/"):
		browser = "Edge"
		version = versionAfter(ua, "Edg/")
	case strings.Contains(ua, "OPR/"):
		browser = "Opera"
		version = versionAfter(ua, "OPR/")
	case strings.Contains(ua, "Firefox/"):
		browser = "Firefox"
		version = versionAfter(ua, "Firefox/")
	case strings.Contains(ua, "Chrome/"):
		browser = "Chrome"
		version = versionAfter(ua, "Chrome/")
	case strings.Contains(ua, "Safari/") && strings.Contains(ua, "Version/"):
		browser = "Safari"
		version = versionAfter(ua, "Version/")
	}

	return osName, browser, version
}

// versionAfter returns the token following marker up to the next space.
func versionAfter(ua, marker string) string {
	idx := strings.Index(ua, marker)
	if idx < 0 {
		return ""
	}

	rest := ua[idx+len(marker):]
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}
	return rest
}
