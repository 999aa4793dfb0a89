package models

import (
	"encoding/json"
	"fmt"
)

// Payload is the closed set of per-category payload types. Every category
// carries exactly one concrete payload type, so push/pull/apply code paths
// can switch on the category tag instead of probing optional fields.
type Payload interface {
	// PayloadCategory returns the category tag of the concrete payload type.
	PayloadCategory() Category
}

// PinnedApp is a single user-pinned shortcut on the new-tab grid.
type PinnedApp struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
	Order int    `json:"order"`
}

// PinnedAppList is the pinned_apps payload: the full ordered shortcut grid.
type PinnedAppList []PinnedApp

func (PinnedAppList) PayloadCategory() Category { return CategoryPinnedApps }

// WorldClock is one configured clock on the new-tab page.
type WorldClock struct {
	Label    string `json:"label"`
	Timezone string `json:"timezone"`
	Order    int    `json:"order"`
}

// WorldClockList is the world_clocks payload.
type WorldClockList []WorldClock

func (WorldClockList) PayloadCategory() Category { return CategoryWorldClocks }

// Settings holds UI preferences for the new-tab page.
type Settings struct {
	Theme          string `json:"theme"`
	ClockFormat24h bool   `json:"clock_format_24h"`
	ShowBookmarks  bool   `json:"show_bookmarks"`
	ShowTopSites   bool   `json:"show_top_sites"`
	SearchEngine   string `json:"search_engine"`
}

func (Settings) PayloadCategory() Category { return CategorySettings }

// Bookmark is one leaf of the browser bookmark tree, flattened.
// FolderPath is the slash-joined chain of ancestor folder titles.
type Bookmark struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	CreatedAt  int64  `json:"created_at"`
	FolderPath string `json:"folder_path"`
}

// BookmarkList is the bookmarks payload: every leaf of the tree, depth-first.
type BookmarkList []Bookmark

func (BookmarkList) PayloadCategory() Category { return CategoryBookmarks }

// HistoryEntry is a reduced browsing-history record.
type HistoryEntry struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	LastVisitTime int64  `json:"last_visit_time"`
	VisitCount    int    `json:"visit_count"`
}

// HistoryList is the history payload: last 30 days, capped at 500 entries.
type HistoryList []HistoryEntry

func (HistoryList) PayloadCategory() Category { return CategoryHistory }

// TopSite is one entry of the browser's most-visited list.
type TopSite struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// TopSiteList is the top_sites payload.
type TopSiteList []TopSite

func (TopSiteList) PayloadCategory() Category { return CategoryTopSites }

// DeviceInfo is the device/browser fingerprint, recomputed on every run and
// never diffed against a prior local value.
type DeviceInfo struct {
	OS                  string `json:"os"`
	Browser             string `json:"browser"`
	BrowserVersion      string `json:"browser_version"`
	ScreenWidth         int    `json:"screen_width"`
	ScreenHeight        int    `json:"screen_height"`
	Locale              string `json:"locale"`
	HardwareConcurrency int    `json:"hardware_concurrency"`
	TouchCapable        bool   `json:"touch_capable"`
}

func (DeviceInfo) PayloadCategory() Category { return CategoryDeviceInfo }

// DecodePayload unmarshals raw JSON into the concrete payload type for the
// given category. It is the single runtime boundary between wire data and
// the typed payload set; everything past it is checked at compile time.
func DecodePayload(category Category, raw json.RawMessage) (Payload, error) {
	var (
		payload Payload
		err     error
	)

	switch category {
	case CategoryPinnedApps:
		var p PinnedAppList
		err = json.Unmarshal(raw, &p)
		payload = p
	case CategoryWorldClocks:
		var p WorldClockList
		err = json.Unmarshal(raw, &p)
		payload = p
	case CategorySettings:
		var p Settings
		err = json.Unmarshal(raw, &p)
		payload = p
	case CategoryBookmarks:
		var p BookmarkList
		err = json.Unmarshal(raw, &p)
		payload = p
	case CategoryHistory:
		var p HistoryList
		err = json.Unmarshal(raw, &p)
		payload = p
	case CategoryTopSites:
		var p TopSiteList
		err = json.Unmarshal(raw, &p)
		payload = p
	case CategoryDeviceInfo:
		var p DeviceInfo
		err = json.Unmarshal(raw, &p)
		payload = p
	default:
		return nil, fmt.Errorf("decode payload: unknown category %q", category)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", category, err)
	}
	return payload, nil
}
