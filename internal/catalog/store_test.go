package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"culler/internal/dupes"
	"culler/internal/quality"
	"culler/internal/scanner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleResult(id string) scanner.Result {
	return scanner.Result{
		ScanID: id,
		Entries: []scanner.MediaEntry{
			{
				Path:            "/library/The Matrix (1999).mkv",
				DisplayName:     "The Matrix (1999)",
				FileSize:        4 << 30,
				NormalizedTitle: "matrix",
				Year:            "1999",
				Quality:         quality.Score{Score: 95, Resolution: "1080p", Source: "BluRay"},
				Fingerprint:     "abc123",
			},
			{
				Path:            "/library/The.Matrix.1999.720p.mkv",
				DisplayName:     "The Matrix",
				FileSize:        2 << 30,
				NormalizedTitle: "matrix",
				Year:            "1999",
				Quality:         quality.Score{Score: 60, Resolution: "720p"},
				Fingerprint:     "def456",
			},
		},
		Warnings: []scanner.Warning{{Path: "/library/Empty Folder", Message: "folder contains no video files"}},
		Duration: 1500 * time.Millisecond,
	}
}

func TestSaveScanRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	result := sampleResult("scan-1")
	groups := []dupes.Group{
		{
			Key: "matrix|1999",
			Members: []dupes.Member{
				{Entry: result.Entries[0], MatchTypes: []dupes.MatchType{dupes.MatchTitle, dupes.MatchSimilarSize}},
				{Entry: result.Entries[1], MatchTypes: []dupes.MatchType{dupes.MatchTitle}},
			},
		},
	}
	if err := store.SaveScan(ctx, "/library", result, groups); err != nil {
		t.Fatalf("SaveScan() error = %v", err)
	}

	records, err := store.ListScans(ctx, 0)
	if err != nil {
		t.Fatalf("ListScans() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ListScans() returned %d records, want 1", len(records))
	}
	record := records[0]
	if record.ID != "scan-1" || record.Root != "/library" {
		t.Fatalf("unexpected record %+v", record)
	}
	if record.EntryCount != 2 || record.GroupCount != 1 || record.WarnCount != 1 {
		t.Fatalf("unexpected counts in record %+v", record)
	}
	if record.Duration != 1500*time.Millisecond {
		t.Fatalf("Duration = %v, want 1.5s", record.Duration)
	}

	loaded, err := store.LoadGroups(ctx, "scan-1")
	if err != nil {
		t.Fatalf("LoadGroups() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("LoadGroups() returned %d groups, want 1", len(loaded))
	}
	got := loaded[0]
	if got.Key != "matrix|1999" {
		t.Fatalf("group key = %q, want %q", got.Key, "matrix|1999")
	}
	if len(got.Members) != 2 {
		t.Fatalf("group has %d members, want 2", len(got.Members))
	}
	if got.Members[0].Entry.Path != result.Entries[0].Path {
		t.Fatalf("first member path = %q, want %q", got.Members[0].Entry.Path, result.Entries[0].Path)
	}
	if !got.Members[0].Has(dupes.MatchSimilarSize) {
		t.Fatal("first member lost similar_size match type")
	}
	if got.Members[0].Entry.Quality.Score != 95 {
		t.Fatalf("quality score = %d, want 95", got.Members[0].Entry.Quality.Score)
	}
}

func TestListScansNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"scan-a", "scan-b", "scan-c"} {
		result := sampleResult(id)
		if err := store.SaveScan(ctx, "/library", result, nil); err != nil {
			t.Fatalf("SaveScan(%s) error = %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	records, err := store.ListScans(ctx, 2)
	if err != nil {
		t.Fatalf("ListScans() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListScans(limit=2) returned %d records", len(records))
	}
	if records[0].ID != "scan-c" || records[1].ID != "scan-b" {
		t.Fatalf("unexpected order: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestLoadGroupsUnknownScan(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadGroups(context.Background(), "missing")
	if !errors.Is(err, ErrScanNotFound) {
		t.Fatalf("LoadGroups() error = %v, want ErrScanNotFound", err)
	}
}

func TestSchemaMismatchRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := Open(path); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Open() error = %v, want ErrSchemaMismatch", err)
	}
}
