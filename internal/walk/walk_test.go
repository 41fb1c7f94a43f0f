package walk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"culler/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Scan.SmallVideoBytes = 10
	return &cfg
}

func buildLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	movie := filepath.Join(root, "Movie.Title.2020.1080p.BluRay")
	if err := os.MkdirAll(movie, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeBytes(t, filepath.Join(movie, "movie.mkv"), 100)
	writeBytes(t, filepath.Join(movie, "sample.mkv"), 5)
	writeBytes(t, filepath.Join(movie, "movie.srt"), 3)

	empty := filepath.Join(root, "Empty Folder (2021)")
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(root, "_Trailers"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	writeBytes(t, filepath.Join(root, "Loose.Movie.2019.720p.mkv"), 50)
	writeBytes(t, filepath.Join(root, "notes.txt"), 4)
	writeBytes(t, filepath.Join(root, "tiny.mkv"), 2)

	return root
}

func writeBytes(t *testing.T, path string, n int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, n), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWalkEnumeratesFoldersAndLooseVideos(t *testing.T) {
	root := buildLibrary(t)
	result, err := New(testConfig()).Walk(root)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	byName := make(map[string]Entry)
	for _, entry := range result.Entries {
		byName[entry.Name] = entry
	}

	if len(result.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(result.Entries), byName)
	}

	movie, ok := byName["Movie.Title.2020.1080p.BluRay"]
	if !ok {
		t.Fatal("movie folder missing")
	}
	if !movie.IsDirectory || movie.FileSize != 100 {
		t.Fatalf("unexpected folder entry: %+v", movie)
	}
	if filepath.Base(movie.PrincipalVideo) != "movie.mkv" {
		t.Fatalf("principal video should be the largest video file, got %s", movie.PrincipalVideo)
	}

	loose, ok := byName["Loose.Movie.2019.720p.mkv"]
	if !ok {
		t.Fatal("loose video missing")
	}
	if loose.IsDirectory || loose.PrincipalVideo != loose.Path || loose.FileSize != 50 {
		t.Fatalf("unexpected loose entry: %+v", loose)
	}

	if _, ok := byName["notes.txt"]; ok {
		t.Fatal("non-video loose file should be skipped")
	}
	if _, ok := byName["_Trailers"]; ok {
		t.Fatal("_Trailers must be skipped")
	}
}

func TestWalkHealthWarnings(t *testing.T) {
	root := buildLibrary(t)
	result, err := New(testConfig()).Walk(root)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	wantFragments := []string{
		"no video files",           // Empty Folder (2021)
		"suspiciously small video", // tiny.mkv
	}
	for _, fragment := range wantFragments {
		found := false
		for _, warning := range result.Warnings {
			if strings.Contains(warning.Message, fragment) {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected warning containing %q, got %v", fragment, result.Warnings)
		}
	}

	// sample.mkv is small but sample-named; it must not be flagged.
	for _, warning := range result.Warnings {
		if strings.Contains(warning.Path, "sample.mkv") {
			t.Fatalf("sample file should not be flagged: %+v", warning)
		}
	}
}

func TestWalkOrphanedSubtitles(t *testing.T) {
	root := t.TempDir()

	subsOnly := filepath.Join(root, "Subs Only (2017)")
	if err := os.MkdirAll(subsOnly, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeBytes(t, filepath.Join(subsOnly, "film.srt"), 3)

	writeBytes(t, filepath.Join(root, "Paired.Movie.2019.mkv"), 50)
	writeBytes(t, filepath.Join(root, "Paired.Movie.2019.en.srt"), 3)
	writeBytes(t, filepath.Join(root, "Gone.Movie.2018.srt"), 3)

	result, err := New(testConfig()).Walk(root)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	orphans := make(map[string]bool)
	for _, warning := range result.Warnings {
		if strings.Contains(warning.Message, "orphaned subtitle") {
			orphans[filepath.Base(warning.Path)] = true
		}
	}
	if !orphans["film.srt"] {
		t.Fatalf("subtitle in video-less folder should be flagged, warnings: %v", result.Warnings)
	}
	if !orphans["Gone.Movie.2018.srt"] {
		t.Fatalf("loose subtitle without a video should be flagged, warnings: %v", result.Warnings)
	}
	if orphans["Paired.Movie.2019.en.srt"] {
		t.Fatal("subtitle paired with a loose video must not be flagged")
	}
}

func TestWalkMissingRoot(t *testing.T) {
	if _, err := New(testConfig()).Walk(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}
