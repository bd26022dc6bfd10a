package storage

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/vcr/pkg/recording"
)

func sampleRecording(path string) recording.Recording {
	rec := recording.NewRecording()
	rec.Request = recording.RecordedRequest{
		Method:  "GET",
		URL:     "http://example.com" + path,
		Host:    "example.com",
		Headers: http.Header{"Accept": []string{"application/json"}},
	}
	rec.Response = recording.RecordedResponse{
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
		Body:       `{"path":"` + path + `"}`,
	}
	return *rec
}

func TestStorage_RoundTrip(t *testing.T) {
	formats := map[string]struct {
		open Factory
		ext  string
	}{
		NameJSON: {OpenJSON, ".json"},
		NameYAML: {OpenYAML, ".yaml"},
	}

	for name, f := range formats {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			s, err := f.open(dir, "example")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "example"+f.ext), s.Path())
			assert.Empty(t, s.Recordings())

			first := sampleRecording("/a")
			second := sampleRecording("/b")
			require.NoError(t, s.Store(first))
			require.NoError(t, s.Store(second))

			reopened, err := f.open(dir, "example")
			require.NoError(t, err)
			recs := reopened.Recordings()
			require.Len(t, recs, 2)

			assert.Equal(t, first.ID, recs[0].ID)
			assert.Equal(t, first.Request, recs[0].Request)
			assert.Equal(t, first.Response, recs[0].Response)
			assert.Equal(t, "http://example.com/b", recs[1].Request.URL)

			assertNoTempFiles(t, dir)
		})
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temp files must not be left behind")
}

func TestStore_Concurrent(t *testing.T) {
	for _, open := range []Factory{OpenJSON, OpenYAML} {
		dir := t.TempDir()
		s, err := open(dir, "concurrent")
		require.NoError(t, err)

		const n = 16
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.Store(sampleRecording("/r"+strconv.Itoa(i))))
				_ = s.Recordings()
			}()
		}
		wg.Wait()

		assert.Len(t, s.Recordings(), n)

		reopened, err := open(dir, "concurrent")
		require.NoError(t, err)
		urls := make(map[string]bool)
		for _, rec := range reopened.Recordings() {
			urls[rec.Request.URL] = true
		}
		assert.Len(t, urls, n, "every stored recording reaches the file")
		assertNoTempFiles(t, dir)
	}
}

func TestOpen_KeepsExplicitExtension(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenYAML(dir, "cassette.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cassette.yml"), s.Path())
}

func TestOpen_EmptyName(t *testing.T) {
	_, err := OpenJSON(t.TempDir(), "")
	assert.ErrorIs(t, err, ErrEmptyCassetteName)
}

func TestOpen_CreatesNestedDirectoriesOnStore(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenJSON(dir, filepath.Join("nested", "deep"))
	require.NoError(t, err)
	require.NoError(t, s.Store(sampleRecording("/x")))

	_, err = os.Stat(filepath.Join(dir, "nested", "deep.json"))
	assert.NoError(t, err)
}

func TestOpen_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{ not json"), 0644))

	_, err := OpenJSON(dir, "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCassette)
}

func TestOpen_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.yaml"), nil, 0644))

	s, err := OpenYAML(dir, "empty")
	require.NoError(t, err)
	assert.Empty(t, s.Recordings())
}

func TestYAMLCassette_IsReadable(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenYAML(dir, "readable")
	require.NoError(t, err)
	require.NoError(t, s.Store(sampleRecording("/users")))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "url: http://example.com/users"))
}
