package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/yourusername/gitti/internal/log"
)

// Status classifies a changed path.
type Status string

const (
	StatusAdded    Status = "added"
	StatusDeleted  Status = "deleted"
	StatusModified Status = "modified"
	StatusChanged  Status = "changed"
)

type ChangedPath struct {
	Path   string
	Status Status
}

// ModeKind selects which two trees a listing compares.
type ModeKind int

const (
	ModeWorkingTree    ModeKind = iota // HEAD vs index, then index vs worktree
	ModeStaged                         // HEAD vs index
	ModeAgainstCommit                  // commit tree vs worktree (index fallback)
	ModeCommitVsParent                 // first parent tree vs commit tree
)

type DiffMode struct {
	Kind   ModeKind
	Commit string
}

func WorkingTree() DiffMode { return DiffMode{Kind: ModeWorkingTree} }
func Staged() DiffMode { return DiffMode{Kind: ModeStaged} }
func AgainstCommit(rev string) DiffMode { return DiffMode{Kind: ModeAgainstCommit, Commit: rev} }
func CommitVsParent(rev string) DiffMode { return DiffMode{Kind: ModeCommitVsParent, Commit: rev} }

// ChangedPaths lists the paths that differ under mode, in listing order.
func (r *Repository) ChangedPaths(mode DiffMode) ([]ChangedPath, error) {
	var (
		paths []ChangedPath
		err   error
	)
	switch mode.Kind {
	case ModeWorkingTree:
		paths, err = r.statusPaths(true)
	case ModeStaged:
		paths, err = r.statusPaths(false)
	case ModeAgainstCommit:
		paths, err = r.againstCommitPaths(mode.Commit)
	case ModeCommitVsParent:
		paths, err = r.commitPaths(mode.Commit)
	default:
		return nil, fmt.Errorf("unknown diff mode %d", mode.Kind)
	}
	if err != nil {
		return nil, err
	}

	paths = r.filterExcluded(paths)
	log.Debug(log.CatGit, "listed changed paths", "mode", mode.Kind, "commit", mode.Commit, "count", len(paths))
	return paths, nil
}

// HasPendingChanges reports whether the index or working tree differs from
// HEAD, untracked files included.
func (r *Repository) HasPendingChanges() (bool, error) {
	status, err := r.status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}

func (r *Repository) status() (git.Status, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}
	return status, nil
}

// statusPaths lists staged changes first, then (if withWorktree) unstaged
// and untracked changes not already listed. Each group is path ordered.
func (r *Repository) statusPaths(withWorktree bool) ([]ChangedPath, error) {
	status, err := r.status()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	files := []ChangedPath{}
	staged := make(map[string]bool)
	for _, name := range names {
		code := status[name].Staging
		if code == git.Unmodified || code == git.Untracked {
			continue
		}
		staged[name] = true
		files = append(files, ChangedPath{Path: name, Status: statusFromCode(code)})
	}

	if !withWorktree {
		return files, nil
	}

	for _, name := range names {
		code := status[name].Worktree
		if staged[name] || code == git.Unmodified {
			continue
		}
		files = append(files, ChangedPath{Path: name, Status: statusFromCode(code)})
	}
	return files, nil
}

func statusFromCode(code git.StatusCode) Status {
	switch code {
	case git.Added, git.Untracked:
		return StatusAdded
	case git.Deleted:
		return StatusDeleted
	case git.Modified:
		return StatusModified
	default:
		return StatusChanged
	}
}

// commitPaths diffs a commit against its first parent.
func (r *Repository) commitPaths(rev string) ([]ChangedPath, error) {
	commit, err := r.resolveCommit(rev)
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree of %s: %w", rev, err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("reading parent of %s: %w", rev, err)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, fmt.Errorf("reading parent tree of %s: %w", rev, err)
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, fmt.Errorf("diffing %s against parent: %w", rev, err)
	}

	files := make([]ChangedPath, 0, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("classifying change in %s: %w", rev, err)
		}
		name := change.To.Name
		if name == "" {
			name = change.From.Name
		}
		files = append(files, ChangedPath{Path: name, Status: statusFromAction(action)})
	}
	return files, nil
}

func statusFromAction(action merkletrie.Action) Status {
	switch action {
	case merkletrie.Insert:
		return StatusAdded
	case merkletrie.Delete:
		return StatusDeleted
	case merkletrie.Modify:
		return StatusModified
	default:
		return StatusChanged
	}
}

// againstCommitPaths compares a commit's tree with what is on disk. The
// candidates are everything that moved between the commit and HEAD plus
// everything git status reports; each is then checked by content.
func (r *Repository) againstCommitPaths(rev string) ([]ChangedPath, error) {
	commit, err := r.resolveCommit(rev)
	if err != nil {
		return nil, err
	}
	base, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree of %s: %w", rev, err)
	}
	head, err := r.headTree()
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]bool)
	changes, err := object.DiffTree(base, head)
	if err != nil {
		return nil, fmt.Errorf("diffing %s against HEAD: %w", rev, err)
	}
	for _, change := range changes {
		if change.From.Name != "" {
			candidates[change.From.Name] = true
		}
		if change.To.Name != "" {
			candidates[change.To.Name] = true
		}
	}

	status, err := r.status()
	if err != nil {
		return nil, err
	}
	for name := range status {
		candidates[name] = true
	}

	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	files := []ChangedPath{}
	for _, name := range names {
		oldText, oldOK, err := treeText(base, name)
		if err != nil {
			return nil, err
		}
		newText, newOK, err := r.worktreeOrIndexText(name)
		if err != nil {
			return nil, err
		}

		switch {
		case !oldOK && !newOK:
			continue
		case !oldOK:
			files = append(files, ChangedPath{Path: name, Status: StatusAdded})
		case !newOK:
			files = append(files, ChangedPath{Path: name, Status: StatusDeleted})
		case oldText != newText:
			files = append(files, ChangedPath{Path: name, Status: StatusModified})
		}
	}
	return files, nil
}

func (r *Repository) filterExcluded(paths []ChangedPath) []ChangedPath {
	if len(r.exclude) == 0 {
		return paths
	}
	kept := paths[:0]
	for _, p := range paths {
		if !hasAnyPrefix(p.Path, r.exclude) {
			kept = append(kept, p)
		}
	}
	return kept
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
