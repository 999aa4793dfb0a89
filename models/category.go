package models

// Category names one independently synchronized slice of extension state.
// The set is fixed: payloads are whole-value replacements keyed by category,
// never deltas.
type Category string

const (
	CategoryPinnedApps  Category = "pinned_apps"
	CategoryWorldClocks Category = "world_clocks"
	CategorySettings    Category = "settings"
	CategoryBookmarks   Category = "bookmarks"
	CategoryHistory     Category = "history"
	CategoryTopSites    Category = "top_sites"
	CategoryDeviceInfo  Category = "device_info"
)

// AllCategories returns the full fixed category set in a stable order.
// The order is used for status probes and batched requests so that two runs
// against the same state produce byte-identical request bodies.
func AllCategories() []Category {
	return []Category{
		CategoryPinnedApps,
		CategoryWorldClocks,
		CategorySettings,
		CategoryBookmarks,
		CategoryHistory,
		CategoryTopSites,
		CategoryDeviceInfo,
	}
}

// MirroredCategories returns the subset of categories whose payload is both
// read from and written back to the local durable store. The remaining
// categories are derived fresh from browser capabilities on every run.
func MirroredCategories() []Category {
	return []Category{CategoryPinnedApps, CategoryWorldClocks, CategorySettings}
}

// IsMirrored reports whether c belongs to the mirrored subset.
func (c Category) IsMirrored() bool {
	switch c {
	case CategoryPinnedApps, CategoryWorldClocks, CategorySettings:
		return true
	}
	return false
}

// IsValid reports whether c is a member of the fixed category set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPinnedApps, CategoryWorldClocks, CategorySettings,
		CategoryBookmarks, CategoryHistory, CategoryTopSites, CategoryDeviceInfo:
		return true
	}
	return false
}

// String implements the [fmt.Stringer] interface.
func (c Category) String() string {
	return string(c)
}
