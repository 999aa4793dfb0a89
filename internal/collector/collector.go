// Package collector gathers the current value of every data category: the
// mirrored payloads from the agent's local store, the read-only browser
// capabilities (bookmarks, history, top sites), and a freshly computed
// device fingerprint.
//
// Every read is independently failure-tolerant. An unavailable capability
// or a malformed stored value yields "category absent" for this run and is
// logged; it never aborts the reconciliation of other categories.
package collector

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ananta-labs/tabsync/internal/checksum"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/store"
	"github.com/ananta-labs/tabsync/models"
)

const (
	historyWindowDays = 30
	historyMaxEntries = 500
)

// Collector assembles the local snapshot at the start of a reconciliation
// run. Capability sources may be nil when the host does not expose them.
type Collector struct {
	state     store.LocalStateRepository
	bookmarks BookmarkSource
	history   HistorySource
	topSites  TopSitesSource
	env       EnvironmentProbe
	logger    *logger.Logger
}

// NewCollector constructs a Collector over the given local store and
// capability sources. Any capability source may be nil; the corresponding
// category is then absent from every snapshot.
func NewCollector(
	state store.LocalStateRepository,
	bookmarks BookmarkSource,
	history HistorySource,
	topSites TopSitesSource,
	env EnvironmentProbe,
	log *logger.Logger,
) *Collector {
	return &Collector{
		state:     state,
		bookmarks: bookmarks,
		history:   history,
		topSites:  topSites,
		env:       env,
		logger:    log,
	}
}

// Collect builds the full local snapshot: every category the collector
// could produce, each with a freshly computed checksum. The mirrored
// categories are read sequentially from the local store; the four
// capability reads run concurrently since none has side effects and none
// depends on another.
func (c *Collector) Collect(ctx context.Context) models.Snapshot {
	snapshot := make(models.Snapshot, len(models.AllCategories()))

	for _, category := range models.MirroredCategories() {
		payload, ok := c.readMirrored(ctx, category)
		if ok {
			c.add(snapshot, payload)
		}
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	gather := func(collect func(context.Context) (models.Payload, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload, err := collect(ctx)
			if err != nil || payload == nil {
				if err != nil {
					c.logger.Warn().Err(err).Msg("capability read failed, category absent this run")
				}
				return
			}
			mu.Lock()
			defer mu.Unlock()
			c.add(snapshot, payload)
		}()
	}

	gather(c.collectBookmarks)
	gather(c.collectHistory)
	gather(c.collectTopSites)
	gather(c.collectDeviceInfo)

	wg.Wait()

	return snapshot
}

// readMirrored loads and decodes one mirrored category from the local
// store. Malformed content is skipped (treated as absent) without
// affecting other categories.
func (c *Collector) readMirrored(ctx context.Context, category models.Category) (models.Payload, bool) {
	raw, err := c.state.GetMirroredPayload(ctx, category)
	if err != nil {
		if !errors.Is(err, store.ErrStateNotFound) {
			c.logger.Warn().Err(err).Str("category", string(category)).Msg("mirrored read failed, category absent this run")
		}
		return nil, false
	}

	payload, err := models.DecodePayload(category, raw)
	if err != nil {
		c.logger.Warn().Err(err).Str("category", string(category)).Msg("malformed mirrored payload, category absent this run")
		return nil, false
	}

	return payload, true
}

func (c *Collector) collectBookmarks(ctx context.Context) (models.Payload, error) {
	if c.bookmarks == nil {
		return nil, nil
	}

	roots, err := c.bookmarks.Tree(ctx)
	if err != nil {
		return nil, err
	}

	flat := make(models.BookmarkList, 0, 64)
	for _, root := range roots {
		flat = flattenBookmarks(root, nil, flat)
	}

	return flat, nil
}

// flattenBookmarks walks the tree depth-first, appending every leaf to out.
// path carries the titles of the ancestor folders; nameless folders (the
// synthetic roots most browsers report) contribute nothing to the path.
func flattenBookmarks(node BookmarkNode, path []string, out models.BookmarkList) models.BookmarkList {
	if node.URL != "" {
		out = append(out, models.Bookmark{
			Title:      node.Title,
			URL:        node.URL,
			CreatedAt:  node.CreatedAt,
			FolderPath: strings.Join(path, "/"),
		})
		return out
	}

	childPath := path
	if node.Title != "" {
		childPath = append(append([]string{}, path...), node.Title)
	}

	for _, child := range node.Children {
		out = flattenBookmarks(child, childPath, out)
	}

	return out
}

func (c *Collector) collectHistory(ctx context.Context) (models.Payload, error) {
	if c.history == nil {
		return nil, nil
	}

	entries, err := c.history.Search(ctx, historyWindowDays, historyMaxEntries)
	if err != nil {
		return nil, err
	}

	if len(entries) > historyMaxEntries {
		entries = entries[:historyMaxEntries]
	}

	return models.HistoryList(entries), nil
}

func (c *Collector) collectTopSites(ctx context.Context) (models.Payload, error) {
	if c.topSites == nil {
		return nil, nil
	}

	sites, err := c.topSites.List(ctx)
	if err != nil {
		return nil, err
	}

	return models.TopSiteList(sites), nil
}

func (c *Collector) collectDeviceInfo(ctx context.Context) (models.Payload, error) {
	if c.env == nil {
		return nil, nil
	}

	env, err := c.env.Environment(ctx)
	if err != nil {
		return nil, err
	}

	return buildDeviceInfo(env), nil
}

// add computes the payload's checksum and stores the completed DataItem in
// the snapshot. A payload that cannot be serialized is dropped for the run.
func (c *Collector) add(snapshot models.Snapshot, payload models.Payload) {
	category := payload.PayloadCategory()

	sum, err := checksum.Compute(payload)
	if err != nil {
		c.logger.Warn().Err(err).Str("category", string(category)).Msg("checksum failed, category absent this run")
		return
	}

	snapshot[category] = models.DataItem{
		Category: category,
		Payload:  payload,
		Checksum: sum,
	}
}
