package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		category Category
		raw      string
		check    func(t *testing.T, payload Payload)
	}{
		{
			category: CategoryPinnedApps,
			raw:      `[{"title":"Mail","url":"https://mail.example.com","order":0}]`,
			check: func(t *testing.T, payload Payload) {
				list, ok := payload.(PinnedAppList)
				require.True(t, ok)
				require.Len(t, list, 1)
				assert.Equal(t, "Mail", list[0].Title)
			},
		},
		{
			category: CategoryWorldClocks,
			raw:      `[{"label":"Tokyo","timezone":"Asia/Tokyo","order":0}]`,
			check: func(t *testing.T, payload Payload) {
				list, ok := payload.(WorldClockList)
				require.True(t, ok)
				require.Len(t, list, 1)
				assert.Equal(t, "Asia/Tokyo", list[0].Timezone)
			},
		},
		{
			category: CategorySettings,
			raw:      `{"theme":"dark","clock_format_24h":true}`,
			check: func(t *testing.T, payload Payload) {
				settings, ok := payload.(Settings)
				require.True(t, ok)
				assert.Equal(t, "dark", settings.Theme)
				assert.True(t, settings.ClockFormat24h)
			},
		},
		{
			category: CategoryBookmarks,
			raw:      `[{"title":"Go","url":"https://go.dev","created_at":1,"folder_path":"Dev"}]`,
			check: func(t *testing.T, payload Payload) {
				list, ok := payload.(BookmarkList)
				require.True(t, ok)
				require.Len(t, list, 1)
				assert.Equal(t, "Dev", list[0].FolderPath)
			},
		},
		{
			category: CategoryHistory,
			raw:      `[{"title":"Example","url":"https://example.com","last_visit_time":2,"visit_count":3}]`,
			check: func(t *testing.T, payload Payload) {
				list, ok := payload.(HistoryList)
				require.True(t, ok)
				require.Len(t, list, 1)
				assert.Equal(t, 3, list[0].VisitCount)
			},
		},
		{
			category: CategoryTopSites,
			raw:      `[{"title":"Example","url":"https://example.com"}]`,
			check: func(t *testing.T, payload Payload) {
				list, ok := payload.(TopSiteList)
				require.True(t, ok)
				require.Len(t, list, 1)
			},
		},
		{
			category: CategoryDeviceInfo,
			raw:      `{"os":"Linux","browser":"Chrome","hardware_concurrency":8}`,
			check: func(t *testing.T, payload Payload) {
				info, ok := payload.(DeviceInfo)
				require.True(t, ok)
				assert.Equal(t, "Linux", info.OS)
				assert.Equal(t, 8, info.HardwareConcurrency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			payload, err := DecodePayload(tt.category, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.category, payload.PayloadCategory())
			tt.check(t, payload)
		})
	}
}

func TestDecodePayload_UnknownCategory(t *testing.T) {
	_, err := DecodePayload(Category("passwords"), json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestDecodePayload_MalformedJSON(t *testing.T) {
	_, err := DecodePayload(CategorySettings, json.RawMessage(`{broken`))
	assert.Error(t, err)
}

func TestDecodePayload_TypeMismatch(t *testing.T) {
	// settings is an object, not an array
	_, err := DecodePayload(CategorySettings, json.RawMessage(`[1,2,3]`))
	assert.Error(t, err)
}
