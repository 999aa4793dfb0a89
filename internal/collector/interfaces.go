package collector

import (
	"context"

	"github.com/ananta-labs/tabsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collector_mock.go -package=mock

// BookmarkNode is one node of the browser's bookmark tree as reported by
// the bookmark capability. Folders have an empty URL and carry Children;
// leaves have a URL and no Children.
type BookmarkNode struct {
	Title     string
	URL       string
	CreatedAt int64
	Children  []BookmarkNode
}

// BookmarkSource is the read-only bookmark capability of the host browser.
// The engine only consumes what it reports and never implements it.
type BookmarkSource interface {
	// Tree returns the root nodes of the bookmark tree.
	Tree(ctx context.Context) ([]BookmarkNode, error)
}

// HistorySource is the read-only browsing-history capability.
type HistorySource interface {
	// Search returns history entries visited in the last windowDays days,
	// at most limit entries, most recent first.
	Search(ctx context.Context, windowDays int, limit int) ([]models.HistoryEntry, error)
}

// TopSitesSource is the read-only most-visited-sites capability.
type TopSitesSource interface {
	// List returns the browser's current top-sites list.
	List(ctx context.Context) ([]models.TopSite, error)
}

// Environment is the raw device/browser environment reported by the host,
// from which the fingerprint is derived.
type Environment struct {
	UserAgent string

	// OSHint is a fallback OS name used when the user-agent string does not
	// identify the platform (e.g. the standalone agent process).
	OSHint string

	ScreenWidth         int
	ScreenHeight        int
	Locale              string
	HardwareConcurrency int
	TouchCapable        bool
}

// EnvironmentProbe reports the current host environment. Probed fresh on
// every run; the fingerprint is never diffed against a prior local value.
type EnvironmentProbe interface {
	Environment(ctx context.Context) (Environment, error)
}
