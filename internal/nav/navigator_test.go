package nav

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yourusername/gitti/internal/diff"
	"github.com/yourusername/gitti/internal/git"
)

type fakeRepo struct {
	current   string
	detached  bool
	branches  []git.Branch
	history   map[string][]git.Commit
	pending   bool
	paths     map[git.DiffMode][]git.ChangedPath
	failPaths bool
	failLog   bool

	historyCalls int
	pathCalls    int
}

func (f *fakeRepo) CurrentBranch() (string, bool) {
	if f.detached {
		return "", false
	}
	return f.current, true
}

func (f *fakeRepo) LocalBranches() ([]git.Branch, error) { return f.branches, nil }

func (f *fakeRepo) CommitHistory(branch string, limit int) ([]git.Commit, error) {
	f.historyCalls++
	if f.failLog {
		return nil, errors.New("log failed")
	}
	h := f.history[branch]
	if len(h) > limit {
		h = h[:limit]
	}
	return h, nil
}

func (f *fakeRepo) ChangedPaths(mode git.DiffMode) ([]git.ChangedPath, error) {
	f.pathCalls++
	if f.failPaths {
		return nil, errors.New("status failed")
	}
	return f.paths[mode], nil
}

func (f *fakeRepo) HasPendingChanges() (bool, error) { return f.pending, nil }

type fakeLoader struct {
	lines map[string]int
	calls int
	last  diff.Target
}

func (f *fakeLoader) Load(target diff.Target, path string) []diff.Hunk {
	f.calls++
	f.last = target
	n, ok := f.lines[target.Commit+":"+path]
	if !ok {
		n = 1
	}
	hunk := diff.Hunk{}
	for i := range n {
		hunk.Lines = append(hunk.Lines, diff.DiffLine{NewLine: i + 1, Tag: diff.Insert, Text: path})
	}
	return []diff.Hunk{hunk}
}

func commit(hash string) git.Commit {
	return git.Commit{Hash: hash, ShortHash: hash, Subject: "subject " + hash}
}

func paths(names ...string) []git.ChangedPath {
	out := make([]git.ChangedPath, len(names))
	for i, n := range names {
		out[i] = git.ChangedPath{Path: n, Status: git.StatusModified}
	}
	return out
}

func newFixture() (*fakeRepo, *fakeLoader) {
	repo := &fakeRepo{
		current: "main",
		branches: []git.Branch{
			{Name: "main", IsCurrent: true},
			{Name: "feature"},
		},
		history: map[string][]git.Commit{
			"main":    {commit("c3"), commit("c2"), commit("c1")},
			"feature": {commit("f1"), commit("c1")},
		},
		pending: true,
		paths: map[git.DiffMode][]git.ChangedPath{
			git.WorkingTree():        paths("a.go", "b.go"),
			git.Staged():             paths("a.go"),
			git.CommitVsParent("c3"): paths("c3.txt"),
			git.CommitVsParent("c2"): paths("c2a.txt", "c2b.txt"),
			git.CommitVsParent("c1"): paths("c1.txt"),
			git.CommitVsParent("f1"): paths("f1.txt"),
		},
	}
	return repo, &fakeLoader{lines: map[string]int{}}
}

func newLoaded(t *testing.T, repo *fakeRepo, loader *fakeLoader, opts Options) *Navigator {
	t.Helper()
	n := New(repo, loader, opts)
	require.NoError(t, n.Load())
	return n
}

func filePaths(n *Navigator) []string {
	out := make([]string, len(n.Files()))
	for i, f := range n.Files() {
		out[i] = f.Path
	}
	return out
}

func TestLoad_LiveEntryFirstWhenPending(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})

	commits := n.Commits()
	require.Len(t, commits, 4)
	require.True(t, commits[0].IsLiveChanges)
	require.Equal(t, git.LiveChangesSubject, commits[0].Subject)
	require.Equal(t, []string{"a.go", "b.go"}, filePaths(n))
	require.Equal(t, diff.Target{}, loader.last)
	require.True(t, n.HasFiles())
	require.Equal(t, "main", n.Branch())
}

func TestLoad_NoLiveEntryWhenClean(t *testing.T) {
	repo, loader := newFixture()
	repo.pending = false
	n := newLoaded(t, repo, loader, Options{})

	require.Len(t, n.Commits(), 3)
	require.Equal(t, []string{"c3.txt"}, filePaths(n))
	require.Equal(t, diff.Target{Commit: "c3"}, loader.last)
}

func TestLoad_StagedAndBaselineModes(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{Staged: true})
	require.Equal(t, []string{"a.go"}, filePaths(n))
	require.Equal(t, diff.Target{Staged: true}, loader.last)

	repo.paths[git.AgainstCommit("c1")] = paths("x.go")
	n = newLoaded(t, repo, loader, Options{Baseline: "c1"})
	require.True(t, n.Commits()[0].IsLiveChanges)
	require.Equal(t, []string{"x.go"}, filePaths(n))
	require.Equal(t, diff.Target{Baseline: "c1"}, loader.last)
}

func TestLoad_BaselineWithCleanTreeHasNoLiveEntry(t *testing.T) {
	repo, loader := newFixture()
	repo.pending = false
	repo.paths[git.AgainstCommit("c1")] = paths("x.go")

	n := newLoaded(t, repo, loader, Options{Baseline: "c1"})
	require.Len(t, n.Commits(), 3)
	require.False(t, n.Commits()[0].IsLiveChanges)
	require.Equal(t, diff.Target{Commit: "c3"}, loader.last)
}

func TestLoad_DetachedHeadKeepsLiveEntry(t *testing.T) {
	repo, loader := newFixture()
	repo.detached = true
	repo.history[""] = []git.Commit{commit("c2"), commit("c1")}

	n := newLoaded(t, repo, loader, Options{})
	require.Len(t, n.Commits(), 3)
	require.True(t, n.Commits()[0].IsLiveChanges)
}

func TestLoad_EmptyHistoryHasNoFiles(t *testing.T) {
	repo, loader := newFixture()
	repo.pending = false
	repo.history["main"] = nil

	n := newLoaded(t, repo, loader, Options{})
	require.Empty(t, n.Commits())
	require.False(t, n.HasFiles())
	require.Empty(t, n.Hunks())
}

func TestLoad_FailureIsReturned(t *testing.T) {
	repo, loader := newFixture()
	repo.failLog = true
	require.Error(t, New(repo, loader, Options{}).Load())

	repo.failLog = false
	repo.failPaths = true
	require.Error(t, New(repo, loader, Options{}).Load())
}

func TestSelectCommit_CascadesAndClamps(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	n.SelectFile(1)
	n.ScrollDiff(1)

	n.SelectCommit(2)
	sel := n.Selection()
	require.Equal(t, 2, sel.CommitIndex)
	require.Zero(t, sel.FileIndex)
	require.Zero(t, sel.DiffScroll)
	require.Equal(t, []string{"c2a.txt", "c2b.txt"}, filePaths(n))
	require.Equal(t, diff.Target{Commit: "c2"}, loader.last)

	n.SelectCommit(100)
	require.Equal(t, 3, n.Selection().CommitIndex)

	calls := repo.pathCalls
	n.SelectCommit(1)
	require.Equal(t, 3, n.Selection().CommitIndex)
	require.Equal(t, calls, repo.pathCalls, "move past the end must not reload")

	n.SelectCommit(-100)
	require.Zero(t, n.Selection().CommitIndex)
}

func TestSelectCommit_FailureKeepsState(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	before := n.Selection()
	files := filePaths(n)

	repo.failPaths = true
	n.SelectCommit(1)
	require.Equal(t, before, n.Selection())
	require.Equal(t, files, filePaths(n))
}

func TestSelectFile_LoadsHunksAndResetsScroll(t *testing.T) {
	repo, loader := newFixture()
	loader.lines[":a.go"] = 50
	n := newLoaded(t, repo, loader, Options{})
	n.SetViewport(Viewport{Branches: 5, Commits: 5, Files: 5, DiffLines: 10})

	n.ScrollDiff(30)
	require.Equal(t, 30, n.Selection().DiffScroll)

	n.SelectFile(1)
	require.Equal(t, 1, n.Selection().FileIndex)
	require.Zero(t, n.Selection().DiffScroll)
	file, ok := n.SelectedFile()
	require.True(t, ok)
	require.Equal(t, "b.go", file.Path)

	calls := loader.calls
	n.SelectFile(1)
	require.Equal(t, calls, loader.calls)
}

func TestScrollDiff_Bounds(t *testing.T) {
	repo, loader := newFixture()
	loader.lines[":a.go"] = 25
	n := newLoaded(t, repo, loader, Options{})
	n.SetViewport(Viewport{Branches: 5, Commits: 5, Files: 5, DiffLines: 10})

	require.Equal(t, 26, n.TotalDiffLines())
	require.Equal(t, 16, n.MaxDiffScroll())

	n.ScrollDiff(-3)
	require.Zero(t, n.Selection().DiffScroll)
	n.PageDiff(1)
	require.Equal(t, 10, n.Selection().DiffScroll)
	n.PageDiff(1)
	require.Equal(t, 16, n.Selection().DiffScroll)
	n.ScrollDiffTo(0)
	require.Zero(t, n.Selection().DiffScroll)
}

func TestScrollDiff_ShortDiffNeverScrolls(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	n.ScrollDiff(3)
	n.PageDiff(1)
	require.Zero(t, n.Selection().DiffScroll)
}

func TestBranchPicker_SelectsAndReloads(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	n.SelectCommit(1)

	n.EnterBranchPicker()
	require.Equal(t, ModeBranchPicker, n.Selection().Mode)
	require.Zero(t, n.Selection().BranchIndex)
	require.Equal(t, 1, n.Selection().CommitIndex, "entering keeps commit state")

	n.MoveBranchCursor(1)
	require.Equal(t, 1, n.Selection().BranchIndex)
	n.SelectBranch(n.Selection().BranchIndex)

	sel := n.Selection()
	require.Equal(t, ModeNormal, sel.Mode)
	require.Equal(t, "feature", n.Branch())
	require.Zero(t, sel.CommitIndex)
	require.Len(t, n.Commits(), 2, "no live entry on a branch that is not checked out")
	require.Equal(t, []string{"f1.txt"}, filePaths(n))
}

func TestBranchPicker_CancelKeepsEverything(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	n.SelectCommit(2)
	before := n.Selection()

	n.EnterBranchPicker()
	n.MoveBranchCursor(1)
	n.CancelBranchPicker()

	after := n.Selection()
	require.Equal(t, ModeNormal, after.Mode)
	require.Equal(t, before.CommitIndex, after.CommitIndex)
	require.Equal(t, before.FileIndex, after.FileIndex)
	require.Equal(t, "main", n.Branch())
}

func TestSelectBranch_OnlyInPicker(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	n.EnterBranchPicker()
	n.CancelBranchPicker()

	n.SelectBranch(1)
	require.Equal(t, "main", n.Branch())
}

func TestSelectBranch_PreselectsCheckedOutBranch(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})
	n.EnterBranchPicker()
	n.SelectBranch(1)
	require.Equal(t, "feature", n.Branch())

	n.EnterBranchPicker()
	require.Zero(t, n.Selection().BranchIndex)
	require.True(t, n.Branches()[0].IsCurrent)
}

func TestClicks(t *testing.T) {
	repo, loader := newFixture()
	n := newLoaded(t, repo, loader, Options{})

	n.ClickCommit(0, 1)
	require.Zero(t, n.Selection().CommitIndex, "header row is ignored")

	n.ClickCommit(3, 1)
	require.Equal(t, 2, n.Selection().CommitIndex)

	n.ClickCommit(40, 1)
	require.Equal(t, 2, n.Selection().CommitIndex, "rows past the list are ignored")

	calls := repo.pathCalls
	n.ClickCommit(3, 1)
	require.Equal(t, calls, repo.pathCalls, "clicking the selected commit is a no-op")

	n.ClickFile(2, 1)
	require.Equal(t, 1, n.Selection().FileIndex)

	n.EnterBranchPicker()
	n.ClickBranch(2, 1)
	require.Equal(t, "feature", n.Branch())
	require.Equal(t, ModeNormal, n.Selection().Mode)
}

func TestClickIndex(t *testing.T) {
	cases := []struct {
		row, header, scroll, length int
		want                        int
		ok                          bool
	}{
		{row: 1, header: 1, scroll: 0, length: 3, want: 0, ok: true},
		{row: 3, header: 1, scroll: 5, length: 10, want: 7, ok: true},
		{row: 0, header: 1, scroll: 5, length: 10},
		{row: 4, header: 1, scroll: 0, length: 3},
	}
	for _, tc := range cases {
		got, ok := ClickIndex(tc.row, tc.header, tc.scroll, tc.length)
		require.Equal(t, tc.ok, ok, "%+v", tc)
		if ok {
			require.Equal(t, tc.want, got, "%+v", tc)
		}
	}
}

func TestScrollIntoView_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 200).Draw(rt, "count")
		visible := rapid.IntRange(1, 40).Draw(rt, "visible")
		moves := rapid.SliceOfN(rapid.IntRange(-50, 50), 1, 30).Draw(rt, "moves")

		index, offset := 0, 0
		for _, d := range moves {
			prev := offset
			index = clamp(index+d, 0, count-1)
			offset = ScrollIntoView(index, offset, visible)
			if offset > index || index >= offset+visible {
				rt.Fatalf("index %d not visible at offset %d (visible %d)", index, offset, visible)
			}
			if index >= prev && index < prev+visible && offset != prev {
				rt.Fatalf("scrolled from %d to %d although %d was visible", prev, offset, index)
			}
		}
	})
}

func TestNavigator_SelectionInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo, loader := newFixture()
		var history []git.Commit
		for i := range rapid.IntRange(1, 40).Draw(rt, "commits") {
			c := commit(fmt.Sprintf("h%d", i))
			history = append(history, c)
			var names []string
			for j := range rapid.IntRange(1, 30).Draw(rt, "files") {
				names = append(names, fmt.Sprintf("%s-%d.go", c.Hash, j))
				loader.lines[c.Hash+":"+names[j]] = rapid.IntRange(0, 80).Draw(rt, "lines")
			}
			repo.paths[git.CommitVsParent(c.Hash)] = paths(names...)
		}
		repo.history["main"] = history
		repo.pending = false

		n := New(repo, loader, Options{})
		if err := n.Load(); err != nil {
			rt.Fatalf("load: %v", err)
		}
		n.SetViewport(Viewport{
			Branches:  rapid.IntRange(1, 10).Draw(rt, "vb"),
			Commits:   rapid.IntRange(1, 10).Draw(rt, "vc"),
			Files:     rapid.IntRange(1, 10).Draw(rt, "vf"),
			DiffLines: rapid.IntRange(1, 30).Draw(rt, "vd"),
		})

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for range steps {
			delta := rapid.IntRange(-15, 15).Draw(rt, "delta")
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				n.SelectCommit(delta)
			case 1:
				n.SelectFile(delta)
			case 2:
				n.ScrollDiff(delta)
			case 3:
				n.PageDiff(delta % 3)
			}

			sel, view := n.Selection(), n.Viewport()
			if sel.CommitScroll > sel.CommitIndex || sel.CommitIndex >= sel.CommitScroll+view.Commits {
				rt.Fatalf("commit %d not visible at %d", sel.CommitIndex, sel.CommitScroll)
			}
			if sel.FileScroll > sel.FileIndex || sel.FileIndex >= sel.FileScroll+view.Files {
				rt.Fatalf("file %d not visible at %d", sel.FileIndex, sel.FileScroll)
			}
			if sel.DiffScroll < 0 || sel.DiffScroll > n.MaxDiffScroll() {
				rt.Fatalf("diff scroll %d outside [0, %d]", sel.DiffScroll, n.MaxDiffScroll())
			}
		}
	})
}

func TestThrottle(t *testing.T) {
	th := NewThrottle(time.Second)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, th.Due(start))
	require.False(t, th.Due(start.Add(100*time.Millisecond)))
	require.False(t, th.Due(start.Add(999*time.Millisecond)))
	require.True(t, th.Due(start.Add(time.Second)))
	require.False(t, th.Due(start.Add(1500*time.Millisecond)))
}
