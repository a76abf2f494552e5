package pictogram

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_filePath(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "plain key",
			key:      "en_search_shower",
			expected: filepath.Join("cache", "en_search_shower.json"),
		},
		{
			name:     "key with spaces",
			key:      "en_search_brush teeth",
			expected: filepath.Join("cache", "en_search_brush_teeth.json"),
		},
		{
			name:     "key with path separators",
			key:      "en_search_a/b\\c:d",
			expected: filepath.Join("cache", "en_search_a_b_c_d.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache("cache")
			assert.Equal(t, tt.expected, cache.filePath(tt.key))
		})
	}
}

func TestFileCache_cache(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		setupContent   string
		fetcher        func() ([]byte, error)
		expectedResult string
		expectedErr    bool
	}{
		{
			name: "miss fetches and stores",
			key:  "en_search_shower",
			fetcher: func() ([]byte, error) {
				return []byte(`[{"_id": 7}]`), nil
			},
			expectedResult: `[{"_id": 7}]`,
		},
		{
			name:         "hit skips the fetcher",
			key:          "en_search_shower",
			setupContent: `[{"_id": 7}]`,
			fetcher: func() ([]byte, error) {
				return nil, errors.New("fetcher must not run")
			},
			expectedResult: `[{"_id": 7}]`,
		},
		{
			name: "fetch error",
			key:  "en_search_shower",
			fetcher: func() ([]byte, error) {
				return nil, errors.New("api unavailable")
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(t.TempDir())
			if tt.setupContent != "" {
				require.NoError(t, os.WriteFile(cache.filePath(tt.key), []byte(tt.setupContent), 0o644))
			}

			result, err := cache.cache(tt.key, tt.fetcher)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(result))

			_, err = os.Stat(cache.filePath(tt.key))
			assert.NoError(t, err)
		})
	}
}
