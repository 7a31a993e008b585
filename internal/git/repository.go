package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/yourusername/gitti/internal/log"
)

var (
	// ErrNotRepository is returned when no repository encloses the given path.
	ErrNotRepository = errors.New("not a git repository")
	// ErrNoCommit is returned when a commit reference cannot be resolved.
	ErrNoCommit = errors.New("unknown commit")
)

type Repository struct {
	repo    *git.Repository
	path    string
	exclude []string
}

// Commit is one entry of the commit list. The live-changes entry has
// IsLiveChanges set and empty hashes.
type Commit struct {
	Hash          string
	ShortHash     string
	Author        string
	Date          time.Time
	Subject       string
	IsLiveChanges bool
}

// LiveChangesSubject is the summary shown for the uncommitted pseudo-commit.
const LiveChangesSubject = "Local Changes"

// LiveChanges returns the pseudo-commit representing uncommitted work.
func LiveChanges() Commit {
	return Commit{Subject: LiveChangesSubject, IsLiveChanges: true}
}

type Branch struct {
	Name      string
	IsCurrent bool
	IsRemote  bool
}

// Discover opens the repository containing path, walking up parent
// directories until a .git is found.
func Discover(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	root := path
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	log.Info(log.CatGit, "opened repository", "root", root)
	return &Repository{
		repo: repo,
		path: root,
	}, nil
}

// Root returns the working tree root.
func (r *Repository) Root() string {
	return r.path
}

// SetExcludePrefixes drops paths starting with any of prefixes from every
// changed-path listing.
func (r *Repository) SetExcludePrefixes(prefixes []string) {
	r.exclude = append([]string(nil), prefixes...)
}

// CurrentBranch returns the checked-out branch name. ok is false on a
// detached HEAD. An unborn branch (no commits yet) is still reported.
func (r *Repository) CurrentBranch() (name string, ok bool) {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", false
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short(), true
	}
	return "", false
}

// LocalBranches lists local branches with the current branch first and the
// rest in name order.
func (r *Repository) LocalBranches() ([]Branch, error) {
	current, _ := r.CurrentBranch()

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	branches := []Branch{}
	seenCurrent := false
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		isCurrent := name == current
		seenCurrent = seenCurrent || isCurrent
		branches = append(branches, Branch{
			Name:      name,
			IsCurrent: isCurrent,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	// An unborn current branch has no ref yet but is still where HEAD points.
	if current != "" && !seenCurrent {
		branches = append(branches, Branch{Name: current, IsCurrent: true})
	}

	sort.SliceStable(branches, func(i, j int) bool {
		if branches[i].IsCurrent != branches[j].IsCurrent {
			return branches[i].IsCurrent
		}
		return branches[i].Name < branches[j].Name
	})

	return branches, nil
}

// CommitHistory returns up to limit commits reachable from branch, most
// recent first. An empty branch name means HEAD. A branch without commits
// yields an empty list.
func (r *Repository) CommitHistory(branch string, limit int) ([]Commit, error) {
	from, ok, err := r.branchTip(branch)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Commit{}, nil
	}

	iter, err := r.repo.Log(&git.LogOptions{
		From:  from,
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %q: %w", branch, err)
	}
	defer iter.Close()

	commits := make([]Commit, 0, min(limit, 256))
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, newCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %q: %w", branch, err)
	}

	return commits, nil
}

func (r *Repository) branchTip(branch string) (plumbing.Hash, bool, error) {
	if branch == "" {
		head, err := r.repo.Head()
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, false, nil
		}
		if err != nil {
			return plumbing.ZeroHash, false, fmt.Errorf("resolving HEAD: %w", err)
		}
		return head.Hash(), true, nil
	}

	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		if current, _ := r.CurrentBranch(); current == branch {
			return plumbing.ZeroHash, false, nil
		}
		return plumbing.ZeroHash, false, fmt.Errorf("branch %q: %w", branch, err)
	}
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("branch %q: %w", branch, err)
	}
	return ref.Hash(), true, nil
}

func newCommit(c *object.Commit) Commit {
	hash := c.Hash.String()
	subject, _, _ := strings.Cut(c.Message, "\n")
	return Commit{
		Hash:      hash,
		ShortHash: hash[:7],
		Author:    c.Author.Name,
		Date:      c.Author.When,
		Subject:   subject,
	}
}

// resolveCommit accepts anything rev-parse style that go-git understands:
// full or abbreviated hashes, branch and tag names, HEAD~n.
func (r *Repository) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrNoCommit, rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrNoCommit, rev, err)
	}
	return commit, nil
}

// ResolveCommit returns the full hash for rev.
func (r *Repository) ResolveCommit(rev string) (string, error) {
	c, err := r.resolveCommit(rev)
	if err != nil {
		return "", err
	}
	return c.Hash.String(), nil
}

// headTree returns the tree at HEAD, or nil for a repository without commits.
func (r *Repository) headTree() (*object.Tree, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit: %w", err)
	}
	return commit.Tree()
}
