package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"culler/internal/config"
)

// trailersDir is the conventional folder for extracted trailers; it never
// holds library content.
const trailersDir = "_Trailers"

// Entry is one raw library item: a movie folder or a loose video file.
type Entry struct {
	Name        string
	Path        string
	FileSize    int64
	IsDirectory bool
	// PrincipalVideo is the largest video file backing the entry, empty
	// when the folder holds none. For loose files it equals Path.
	PrincipalVideo string
}

// Warning is a non-fatal finding attached to a path.
type Warning struct {
	Path    string
	Message string
}

// Result carries the enumerated entries plus health warnings.
type Result struct {
	Entries  []Entry
	Warnings []Warning
}

// Walker enumerates library roots.
type Walker struct {
	cfg *config.Config
}

// New constructs a Walker over the given configuration.
func New(cfg *config.Config) *Walker {
	return &Walker{cfg: cfg}
}

// Walk enumerates the immediate children of root. Directories become
// folder entries backed by their largest contained video; loose video
// files become file entries. Unreadable children produce warnings, not
// errors; only an unreadable root fails the walk.
func (w *Walker) Walk(root string) (Result, error) {
	var result Result

	children, err := os.ReadDir(root)
	if err != nil {
		return Result{}, fmt.Errorf("read library root %s: %w", root, err)
	}

	var looseSubtitles []string
	var looseVideoStems []string
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, ".") || name == trailersDir {
			continue
		}
		path := filepath.Join(root, name)

		if child.IsDir() {
			entry, warnings := w.folderEntry(name, path)
			result.Entries = append(result.Entries, entry)
			result.Warnings = append(result.Warnings, warnings...)
			continue
		}

		if w.cfg.IsSubtitleFile(name) {
			looseSubtitles = append(looseSubtitles, path)
			continue
		}
		if !w.cfg.IsVideoFile(name) {
			continue
		}
		info, err := child.Info()
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Path: path, Message: fmt.Sprintf("stat failed: %v", err)})
			continue
		}
		looseVideoStems = append(looseVideoStems, stem(name))
		result.Entries = append(result.Entries, Entry{
			Name:           name,
			Path:           path,
			FileSize:       info.Size(),
			PrincipalVideo: path,
		})
		result.Warnings = append(result.Warnings, w.sizeWarnings(path, name, info.Size())...)
	}
	result.Warnings = append(result.Warnings, orphanWarnings(looseSubtitles, looseVideoStems)...)

	return result, nil
}

func (w *Walker) folderEntry(name, path string) (Entry, []Warning) {
	entry := Entry{Name: name, Path: path, IsDirectory: true}
	var warnings []Warning

	children, err := os.ReadDir(path)
	if err != nil {
		warnings = append(warnings, Warning{Path: path, Message: fmt.Sprintf("read folder: %v", err)})
		return entry, warnings
	}

	var subtitles []string
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		if w.cfg.IsSubtitleFile(child.Name()) {
			subtitles = append(subtitles, filepath.Join(path, child.Name()))
			continue
		}
		if !w.cfg.IsVideoFile(child.Name()) {
			continue
		}
		info, err := child.Info()
		if err != nil {
			warnings = append(warnings, Warning{Path: filepath.Join(path, child.Name()), Message: fmt.Sprintf("stat failed: %v", err)})
			continue
		}
		if info.Size() > entry.FileSize || entry.PrincipalVideo == "" {
			entry.FileSize = info.Size()
			entry.PrincipalVideo = filepath.Join(path, child.Name())
		}
	}

	if entry.PrincipalVideo == "" {
		warnings = append(warnings, Warning{Path: path, Message: "folder contains no video files"})
		warnings = append(warnings, orphanWarnings(subtitles, nil)...)
		return entry, warnings
	}
	warnings = append(warnings, w.sizeWarnings(entry.PrincipalVideo, filepath.Base(entry.PrincipalVideo), entry.FileSize)...)
	return entry, warnings
}

// orphanWarnings flags subtitle files with no video to pair with. A subtitle
// pairs with a video whose stem prefixes its own, so "Movie.2019.en.srt"
// belongs to "Movie.2019.mkv".
func orphanWarnings(subtitles []string, videoStems []string) []Warning {
	var warnings []Warning
	for _, sub := range subtitles {
		paired := false
		for _, video := range videoStems {
			if strings.HasPrefix(stem(filepath.Base(sub)), video) {
				paired = true
				break
			}
		}
		if !paired {
			warnings = append(warnings, Warning{Path: sub, Message: "orphaned subtitle: no matching video"})
		}
	}
	return warnings
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func (w *Walker) sizeWarnings(path, name string, size int64) []Warning {
	if size == 0 {
		return []Warning{{Path: path, Message: "zero-byte video file"}}
	}
	threshold := w.cfg.Scan.SmallVideoBytes
	if threshold <= 0 || size >= threshold {
		return nil
	}
	lower := strings.ToLower(name)
	for _, token := range []string{"sample", "trailer", "teaser"} {
		if strings.Contains(lower, token) {
			return nil
		}
	}
	return []Warning{{Path: path, Message: fmt.Sprintf("suspiciously small video (%d bytes)", size)}}
}
