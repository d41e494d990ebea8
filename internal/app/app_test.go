package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amterp/better-emoji-picker/internal/config"
	"github.com/amterp/better-emoji-picker/internal/source"
)

const testCatalogJSON = `[
	{"unified":"1F600","name":"GRINNING FACE","short_names":["grinning"],"category":"Smileys & Emotion","sort_order":1,"has_img_apple":true},
	{"unified":"1F9D4","name":"BEARDED PERSON","short_names":["bearded_person"],"category":"People & Body","sort_order":2,"has_img_apple":false}
]`

const testKeywordJSON = `{"😀":["grinning face","grinning","happy","joy"]}`

// testApplication wires an Application against stub HTTP sources and a
// temp output path, capturing the report instead of printing it.
func testApplication(t *testing.T, catalogStatus int) (*Application, string, *bytes.Buffer) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/emoji.json", func(w http.ResponseWriter, _ *http.Request) {
		if catalogStatus != http.StatusOK {
			http.Error(w, "upstream broken", catalogStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, testCatalogJSON)
	})
	mux.HandleFunc("/emoji-en-US.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, testKeywordJSON)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	outPath := filepath.Join(t.TempDir(), "data", "emojis.json")
	cfg := &config.AppConfig{
		Sources: source.Config{
			CatalogURL:     ts.URL + "/emoji.json",
			KeywordURL:     ts.URL + "/emoji-en-US.json",
			TimeoutSeconds: 5,
		},
		OutputPath: outPath,
	}

	application := NewApplication(cfg)
	var buf bytes.Buffer
	application.Out = &buf
	return application, outPath, &buf
}

func TestApplication_Run_WritesArtifact(t *testing.T) {
	application, outPath, out := testApplication(t, http.StatusOK)

	err := application.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	want := `[{"emoji":"😀","name":"grinning face","keywords":["grinning","happy","joy"],"category":"Smileys & Emotion","sortOrder":1}]`
	assert.Equal(t, want, string(data))

	report := out.String()
	assert.Contains(t, report, "Catalog entries: 2")
	assert.Contains(t, report, "Keyword entries: 1")
	assert.Contains(t, report, "Processed 1 emojis (1 skipped)")
	assert.Contains(t, report, "Output: "+outPath)
	assert.Contains(t, report, "Done!")
}

func TestApplication_Run_DryRunWritesNothing(t *testing.T) {
	application, outPath, out := testApplication(t, http.StatusOK)
	application.Config.DryRun = true

	err := application.Run(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "dry run must not write the artifact")
	assert.Contains(t, out.String(), "Dry run: artifact not written")
}

func TestApplication_Run_LogsSkipReasons(t *testing.T) {
	application, _, _ := testApplication(t, http.StatusOK)

	var logBuf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&logBuf)
	t.Cleanup(func() { log.Logger = prev })

	require.NoError(t, application.Run(context.Background()))

	// The catalog fixture carries one entry without an Apple rendering,
	// so the build event must account for it per reason.
	assert.Contains(t, logBuf.String(), `"skipped_by_reason":{"no_apple_img":1}`)
}

func TestApplication_Run_FetchFailureAborts(t *testing.T) {
	application, outPath, _ := testApplication(t, http.StatusInternalServerError)

	err := application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching sources")
	assert.Contains(t, err.Error(), "status 500")

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no artifact may be written on fetch failure")
}
