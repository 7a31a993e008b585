package diff

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/highlight"
	"github.com/yourusername/gitti/internal/log"
)

// binaryExtensions are never read; their diff is always the binary
// placeholder.
var binaryExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "ico": true,
	"pdf": true, "zip": true, "tar": true, "gz": true,
	"bin": true, "exe": true, "dll": true, "so": true, "dylib": true,
	"o": true, "a": true, "class": true, "jar": true,
	"rlib": true, "rmeta": true, "d": true,
}

// IsBinaryPath reports whether path has a deny-listed extension.
func IsBinaryPath(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return binaryExtensions[strings.ToLower(ext)]
}

// TextReader reads one version of a file. ok is false when the path does
// not exist at ref.
type TextReader interface {
	FileText(ref git.Ref, path string) (text string, ok bool, err error)
}

// Target names which two versions of a file are compared.
type Target struct {
	// Commit is the historical commit shown against its parent. Empty
	// means the live working tree or index.
	Commit string
	// Staged compares HEAD with the index instead of the working tree.
	Staged bool
	// Baseline replaces HEAD as the old side of a live comparison.
	Baseline string
}

// Live reports whether t compares uncommitted content.
func (t Target) Live() bool {
	return t.Commit == ""
}

func (t Target) refs() (oldRef, newRef git.Ref) {
	if !t.Live() {
		return git.ParentRef(t.Commit), git.CommitRef(t.Commit)
	}
	oldRef = git.HeadRef()
	if t.Baseline != "" {
		oldRef = git.CommitRef(t.Baseline)
	}
	newRef = git.WorktreeRef()
	if t.Staged {
		newRef = git.IndexRef()
	}
	return oldRef, newRef
}

type Options struct {
	Context     int
	SyntaxTheme string
	CacheTTL    time.Duration
}

// Loader produces the hunks for one file of a target.
type Loader struct {
	reader      TextReader
	highlighter *highlight.Highlighter
	context     int
	cache       *hunkCache
}

func NewLoader(reader TextReader, opts Options) *Loader {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Loader{
		reader:      reader,
		highlighter: highlight.New(opts.SyntaxTheme),
		context:     max(0, opts.Context),
		cache:       newHunkCache(ttl),
	}
}

// Context is the number of unchanged lines kept around each change.
func (l *Loader) Context() int {
	return l.context
}

// Load returns the hunks for path. Files that cannot be diffed yield a
// single placeholder hunk; Load itself never fails.
func (l *Loader) Load(target Target, path string) []Hunk {
	if IsBinaryPath(path) {
		return []Hunk{PlaceholderHunk(BinaryFile)}
	}

	var key string
	if !target.Live() {
		key = cacheKey(target.Commit, path, l.context)
		if hunks, ok := l.cache.get(key); ok {
			return hunks
		}
	}

	hunks := l.compute(target, path)
	if key != "" {
		l.cache.set(key, hunks)
	}
	return hunks
}

func (l *Loader) compute(target Target, path string) []Hunk {
	oldRef, newRef := target.refs()

	oldText, oldOK, err := l.reader.FileText(oldRef, path)
	if err != nil {
		log.ErrorErr(log.CatDiff, "reading old side failed", err, "path", path)
		return []Hunk{PlaceholderHunk(UnreadableFile)}
	}
	newText, newOK, err := l.reader.FileText(newRef, path)
	if err != nil {
		log.ErrorErr(log.CatDiff, "reading new side failed", err, "path", path)
		return []Hunk{PlaceholderHunk(UnreadableFile)}
	}
	if !oldOK && !newOK {
		log.Debug(log.CatDiff, "path missing on both sides", "path", path)
		return []Hunk{PlaceholderHunk(UnreadableFile)}
	}
	if strings.Contains(oldText, "\x00") || strings.Contains(newText, "\x00") {
		return []Hunk{PlaceholderHunk(BinaryFile)}
	}

	return l.Diff(path, oldText, newText)
}

// Diff runs the line differ over two texts, numbers and highlights the
// result and windows it into hunks. Identical texts give no hunks.
func (l *Loader) Diff(path, oldText, newText string) []Hunk {
	changes := DiffLines(oldText, newText)

	texts := make([]string, len(changes))
	for i, c := range changes {
		texts[i] = c.Text
	}
	spans := l.highlighter.Lines(path, texts)

	hunks := ExtractHunks(Number(changes, spans), l.context)
	log.Debug(log.CatDiff, "diffed file", "path", path, "lines", len(changes), "hunks", len(hunks))
	return hunks
}
