package git

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RefKind names where FileText reads from.
type RefKind int

const (
	RefHead     RefKind = iota // tree at HEAD
	RefIndex                   // staged blob
	RefWorktree                // file on disk, or staged blob if unreadable
	RefCommit                  // tree of Ref.Commit
	RefParent                  // tree of Ref.Commit's first parent
)

type Ref struct {
	Kind   RefKind
	Commit string
}

func HeadRef() Ref { return Ref{Kind: RefHead} }
func IndexRef() Ref { return Ref{Kind: RefIndex} }
func WorktreeRef() Ref { return Ref{Kind: RefWorktree} }
func CommitRef(rev string) Ref { return Ref{Kind: RefCommit, Commit: rev} }
func ParentRef(rev string) Ref { return Ref{Kind: RefParent, Commit: rev} }

// FileText returns the raw text of path at ref. ok is false when the path
// does not exist there; err is reserved for failures to read at all.
func (r *Repository) FileText(ref Ref, path string) (string, bool, error) {
	switch ref.Kind {
	case RefHead:
		tree, err := r.headTree()
		if err != nil {
			return "", false, err
		}
		return treeText(tree, path)
	case RefIndex:
		return r.indexText(path)
	case RefWorktree:
		return r.worktreeOrIndexText(path)
	case RefCommit:
		commit, err := r.resolveCommit(ref.Commit)
		if err != nil {
			return "", false, err
		}
		tree, err := commit.Tree()
		if err != nil {
			return "", false, fmt.Errorf("reading tree of %s: %w", ref.Commit, err)
		}
		return treeText(tree, path)
	case RefParent:
		commit, err := r.resolveCommit(ref.Commit)
		if err != nil {
			return "", false, err
		}
		if commit.NumParents() == 0 {
			return "", false, nil
		}
		parent, err := commit.Parent(0)
		if err != nil {
			return "", false, fmt.Errorf("reading parent of %s: %w", ref.Commit, err)
		}
		tree, err := parent.Tree()
		if err != nil {
			return "", false, fmt.Errorf("reading parent tree of %s: %w", ref.Commit, err)
		}
		return treeText(tree, path)
	default:
		return "", false, fmt.Errorf("unknown ref kind %d", ref.Kind)
	}
}

func treeText(tree *object.Tree, path string) (string, bool, error) {
	if tree == nil {
		return "", false, nil
	}
	f, err := tree.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("finding %s: %w", path, err)
	}
	text, err := f.Contents()
	if err != nil {
		return "", false, fmt.Errorf("reading blob %s: %w", path, err)
	}
	return text, true, nil
}

func (r *Repository) indexText(path string) (string, bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return "", false, fmt.Errorf("reading index: %w", err)
	}
	entry, err := idx.Entry(path)
	if errors.Is(err, index.ErrEntryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("finding %s in index: %w", path, err)
	}

	blob, err := r.repo.BlobObject(entry.Hash)
	if err != nil {
		return "", false, fmt.Errorf("reading staged blob %s: %w", path, err)
	}
	rd, err := blob.Reader()
	if err != nil {
		return "", false, fmt.Errorf("reading staged blob %s: %w", path, err)
	}
	defer rd.Close()

	data, err := io.ReadAll(rd)
	if err != nil {
		return "", false, fmt.Errorf("reading staged blob %s: %w", path, err)
	}
	return string(data), true, nil
}

func (r *Repository) worktreeText(path string) (string, bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", false, fmt.Errorf("opening worktree: %w", err)
	}
	data, err := util.ReadFile(wt.Filesystem, path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// worktreeOrIndexText reads path from disk. Any failure to read it, a
// missing file included, falls back to its staged text.
func (r *Repository) worktreeOrIndexText(path string) (string, bool, error) {
	text, ok, err := r.worktreeText(path)
	if err == nil && ok {
		return text, true, nil
	}
	return r.indexText(path)
}
