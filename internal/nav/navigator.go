package nav

import (
	"fmt"
	"time"

	"github.com/yourusername/gitti/internal/diff"
	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/log"
)

// Repository is the part of the git adapter the navigator queries.
type Repository interface {
	CurrentBranch() (string, bool)
	LocalBranches() ([]git.Branch, error)
	CommitHistory(branch string, limit int) ([]git.Commit, error)
	ChangedPaths(mode git.DiffMode) ([]git.ChangedPath, error)
	HasPendingChanges() (bool, error)
}

// HunkLoader produces the hunks of one file.
type HunkLoader interface {
	Load(target diff.Target, path string) []diff.Hunk
}

type Options struct {
	// Staged shows only index changes for the live entry.
	Staged bool
	// Baseline compares the live entry against this commit instead of HEAD.
	Baseline     string
	HistoryLimit int
	// RefreshInterval is the minimum time between reconciliations.
	RefreshInterval time.Duration
}

// Navigator is the single owner of the selection and the cached branch,
// commit, file and hunk collections. It is not safe for concurrent use.
type Navigator struct {
	repo   Repository
	loader HunkLoader
	opts   Options

	sel      Selection
	view     Viewport
	throttle *Throttle

	branch   string
	branches []git.Branch
	commits  []git.Commit
	files    []git.ChangedPath
	hunks    []diff.Hunk
}

func New(repo Repository, loader HunkLoader, opts Options) *Navigator {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 1000
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Second
	}
	return &Navigator{
		repo:     repo,
		loader:   loader,
		opts:     opts,
		view:     DefaultViewport,
		throttle: NewThrottle(opts.RefreshInterval),
	}
}

// Load populates every level for the checked-out branch. Unlike the
// interactive transitions, a failure here is returned to the caller.
func (n *Navigator) Load() error {
	branch, _ := n.repo.CurrentBranch()

	commits, err := n.loadCommits(branch)
	if err != nil {
		return fmt.Errorf("loading commits: %w", err)
	}

	var files []git.ChangedPath
	if len(commits) > 0 {
		files, err = n.loadFiles(commits[0])
		if err != nil {
			return fmt.Errorf("loading changed files: %w", err)
		}
	}

	n.branch = branch
	n.commits = commits
	n.sel = Selection{Mode: ModeNormal}
	n.setFiles(files)
	return nil
}

// HasFiles reports whether the selected entry lists any changed file.
func (n *Navigator) HasFiles() bool {
	return len(n.files) > 0
}

// EnterBranchPicker loads the branch list and preselects the checked-out
// branch, whichever branch is being viewed.
func (n *Navigator) EnterBranchPicker() {
	branches, err := n.repo.LocalBranches()
	if err != nil {
		log.ErrorErr(log.CatNav, "listing branches failed", err)
		return
	}

	n.branches = branches
	n.sel.BranchIndex = 0
	for i, b := range branches {
		if b.IsCurrent {
			n.sel.BranchIndex = i
			break
		}
	}
	n.sel.BranchScroll = ScrollIntoView(n.sel.BranchIndex, 0, n.view.Branches)
	n.sel.Mode = ModeBranchPicker
}

func (n *Navigator) CancelBranchPicker() {
	n.sel.Mode = ModeNormal
}

// MoveBranchCursor moves the picker cursor by delta, clamped to the list.
func (n *Navigator) MoveBranchCursor(delta int) {
	if n.sel.Mode != ModeBranchPicker || len(n.branches) == 0 {
		return
	}
	n.sel.BranchIndex = clamp(n.sel.BranchIndex+delta, 0, len(n.branches)-1)
	n.sel.BranchScroll = ScrollIntoView(n.sel.BranchIndex, n.sel.BranchScroll, n.view.Branches)
}

// SelectBranch makes the branch at index active and reloads everything
// below it. It is only valid in the branch picker.
func (n *Navigator) SelectBranch(index int) {
	if n.sel.Mode != ModeBranchPicker || index < 0 || index >= len(n.branches) {
		return
	}
	name := n.branches[index].Name

	commits, err := n.loadCommits(name)
	if err != nil {
		log.ErrorErr(log.CatNav, "loading commits failed", err, "branch", name)
		return
	}
	var files []git.ChangedPath
	if len(commits) > 0 {
		if files, err = n.loadFiles(commits[0]); err != nil {
			log.ErrorErr(log.CatNav, "loading files failed", err, "branch", name)
			return
		}
	}

	log.Debug(log.CatNav, "selected branch", "branch", name, "commits", len(commits))
	n.branch = name
	n.commits = commits
	n.sel.BranchIndex = index
	n.sel.BranchScroll = ScrollIntoView(index, n.sel.BranchScroll, n.view.Branches)
	n.sel.CommitIndex = 0
	n.sel.CommitScroll = 0
	n.setFiles(files)
	n.sel.Mode = ModeNormal
}

// SelectCommit moves the commit cursor by delta, clamped to the list.
func (n *Navigator) SelectCommit(delta int) {
	if len(n.commits) == 0 {
		return
	}
	n.SelectCommitAt(clamp(n.sel.CommitIndex+delta, 0, len(n.commits)-1))
}

// SelectCommitAt makes the commit at index active and reloads its files.
// Selecting the active commit again does nothing.
func (n *Navigator) SelectCommitAt(index int) {
	if index < 0 || index >= len(n.commits) || index == n.sel.CommitIndex {
		return
	}
	files, err := n.loadFiles(n.commits[index])
	if err != nil {
		log.ErrorErr(log.CatNav, "loading files failed", err, "commit", n.commits[index].ShortHash)
		return
	}
	n.sel.CommitIndex = index
	n.sel.CommitScroll = ScrollIntoView(index, n.sel.CommitScroll, n.view.Commits)
	n.setFiles(files)
}

// SelectFile moves the file cursor by delta, clamped to the list.
func (n *Navigator) SelectFile(delta int) {
	if len(n.files) == 0 {
		return
	}
	n.SelectFileAt(clamp(n.sel.FileIndex+delta, 0, len(n.files)-1))
}

// SelectFileAt makes the file at index active and loads its hunks.
func (n *Navigator) SelectFileAt(index int) {
	if index < 0 || index >= len(n.files) || index == n.sel.FileIndex {
		return
	}
	n.sel.FileIndex = index
	n.sel.FileScroll = ScrollIntoView(index, n.sel.FileScroll, n.view.Files)
	n.loadHunks()
}

// ScrollDiff moves the diff pane by delta lines within its bounds.
func (n *Navigator) ScrollDiff(delta int) {
	n.sel.DiffScroll = clamp(n.sel.DiffScroll+delta, 0, n.MaxDiffScroll())
}

// PageDiff moves the diff pane by pages whole viewport heights.
func (n *Navigator) PageDiff(pages int) {
	n.ScrollDiff(pages * max(1, n.view.DiffLines))
}

// ScrollDiffTo jumps to an absolute diff line, clamped.
func (n *Navigator) ScrollDiffTo(line int) {
	n.sel.DiffScroll = clamp(line, 0, n.MaxDiffScroll())
}

// ClickBranch selects the branch under a row of the picker.
func (n *Navigator) ClickBranch(row, header int) {
	if i, ok := ClickIndex(row, header, n.sel.BranchScroll, len(n.branches)); ok && i != n.sel.BranchIndex {
		n.SelectBranch(i)
	}
}

// ClickCommit selects the commit under a row of the commit panel.
func (n *Navigator) ClickCommit(row, header int) {
	if i, ok := ClickIndex(row, header, n.sel.CommitScroll, len(n.commits)); ok {
		n.SelectCommitAt(i)
	}
}

// ClickFile selects the file under a row of the file panel.
func (n *Navigator) ClickFile(row, header int) {
	if i, ok := ClickIndex(row, header, n.sel.FileScroll, len(n.files)); ok {
		n.SelectFileAt(i)
	}
}

// SetViewport records the visible sizes and re-applies every scroll bound.
func (n *Navigator) SetViewport(v Viewport) {
	n.view = v
	n.sel.BranchScroll = ScrollIntoView(n.sel.BranchIndex, n.sel.BranchScroll, v.Branches)
	n.sel.CommitScroll = ScrollIntoView(n.sel.CommitIndex, n.sel.CommitScroll, v.Commits)
	n.sel.FileScroll = ScrollIntoView(n.sel.FileIndex, n.sel.FileScroll, v.Files)
	n.sel.DiffScroll = clamp(n.sel.DiffScroll, 0, n.MaxDiffScroll())
}

func (n *Navigator) Selection() Selection { return n.sel }
func (n *Navigator) Viewport() Viewport { return n.view }
func (n *Navigator) Branch() string { return n.branch }
func (n *Navigator) Branches() []git.Branch { return n.branches }
func (n *Navigator) Commits() []git.Commit { return n.commits }
func (n *Navigator) Files() []git.ChangedPath { return n.files }
func (n *Navigator) Hunks() []diff.Hunk { return n.hunks }

// SelectedCommit returns the active commit entry, if any.
func (n *Navigator) SelectedCommit() (git.Commit, bool) {
	if n.sel.CommitIndex >= len(n.commits) {
		return git.Commit{}, false
	}
	return n.commits[n.sel.CommitIndex], true
}

// SelectedFile returns the active changed path, if any.
func (n *Navigator) SelectedFile() (git.ChangedPath, bool) {
	if n.sel.FileIndex >= len(n.files) {
		return git.ChangedPath{}, false
	}
	return n.files[n.sel.FileIndex], true
}

// TotalDiffLines counts every hunk line plus one separator per hunk.
func (n *Navigator) TotalDiffLines() int {
	return diff.TotalLines(n.hunks)
}

func (n *Navigator) MaxDiffScroll() int {
	return max(0, n.TotalDiffLines()-n.view.DiffLines)
}

// loadCommits returns the history of branch, led by the live entry when
// branch is checked out and has uncommitted work.
func (n *Navigator) loadCommits(branch string) ([]git.Commit, error) {
	history, err := n.repo.CommitHistory(branch, n.opts.HistoryLimit)
	if err != nil {
		return nil, err
	}
	if !n.isCheckedOut(branch) {
		return history, nil
	}

	pending, err := n.repo.HasPendingChanges()
	if err != nil {
		return nil, err
	}
	if !pending {
		return history, nil
	}
	return append([]git.Commit{git.LiveChanges()}, history...), nil
}

func (n *Navigator) isCheckedOut(branch string) bool {
	current, ok := n.repo.CurrentBranch()
	if !ok {
		return branch == ""
	}
	return branch == current
}

func (n *Navigator) loadFiles(c git.Commit) ([]git.ChangedPath, error) {
	return n.repo.ChangedPaths(n.modeFor(c))
}

func (n *Navigator) modeFor(c git.Commit) git.DiffMode {
	switch {
	case !c.IsLiveChanges:
		return git.CommitVsParent(c.Hash)
	case n.opts.Baseline != "":
		return git.AgainstCommit(n.opts.Baseline)
	case n.opts.Staged:
		return git.Staged()
	default:
		return git.WorkingTree()
	}
}

func (n *Navigator) targetFor(c git.Commit) diff.Target {
	if !c.IsLiveChanges {
		return diff.Target{Commit: c.Hash}
	}
	return diff.Target{Staged: n.opts.Staged, Baseline: n.opts.Baseline}
}

// setFiles replaces the file list, selects its first entry and reloads
// the hunks.
func (n *Navigator) setFiles(files []git.ChangedPath) {
	n.files = files
	n.sel.FileIndex = 0
	n.sel.FileScroll = 0
	n.loadHunks()
}

func (n *Navigator) loadHunks() {
	n.hunks = n.currentHunks()
	n.sel.DiffScroll = 0
}

func (n *Navigator) currentHunks() []diff.Hunk {
	commit, ok := n.SelectedCommit()
	if !ok {
		return nil
	}
	file, ok := n.SelectedFile()
	if !ok {
		return nil
	}
	return n.loader.Load(n.targetFor(commit), file.Path)
}
