package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// testRepo is a throwaway repository with a clock that advances one minute
// per commit so history order is deterministic.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	when time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return &testRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		when: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
}

func (r *testRepo) remove(name string) {
	r.t.Helper()
	require.NoError(r.t, os.Remove(filepath.Join(r.dir, name)))
}

func (r *testRepo) stage(name string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = wt.Add(name)
	require.NoError(r.t, err)
}

func (r *testRepo) commitAll(msg string) string {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	require.NoError(r.t, wt.AddWithOptions(&gogit.AddOptions{All: true}))

	r.when = r.when.Add(time.Minute)
	hash, err := wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: r.when},
	})
	require.NoError(r.t, err)
	return hash.String()
}

func (r *testRepo) branch(name, hash string) {
	r.t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), plumbing.NewHash(hash))
	require.NoError(r.t, r.repo.Storer.SetReference(ref))
}

func (r *testRepo) open() *Repository {
	r.t.Helper()
	repo, err := Discover(r.dir)
	require.NoError(r.t, err)
	return repo
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	tr := newTestRepo(t)
	tr.write("pkg/a.go", "package pkg\n")
	tr.commitAll("init")

	repo, err := Discover(filepath.Join(tr.dir, "pkg"))
	require.NoError(t, err)
	require.Equal(t, tr.dir, repo.Root())
}

func TestDiscover_NotARepository(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.ErrorIs(t, err, ErrNotRepository)
}

func TestCurrentBranch_UnbornRepository(t *testing.T) {
	tr := newTestRepo(t)
	repo := tr.open()

	name, ok := repo.CurrentBranch()
	require.True(t, ok)
	require.NotEmpty(t, name)

	commits, err := repo.CommitHistory(name, 10)
	require.NoError(t, err)
	require.Empty(t, commits)

	branches, err := repo.LocalBranches()
	require.NoError(t, err)
	require.Equal(t, []Branch{{Name: name, IsCurrent: true}}, branches)
}

func TestLocalBranches_CurrentFirstThenAlphabetical(t *testing.T) {
	tr := newTestRepo(t)
	tr.write("a.txt", "a\n")
	head := tr.commitAll("init")
	tr.branch("zeta", head)
	tr.branch("alpha", head)

	repo := tr.open()
	current, ok := repo.CurrentBranch()
	require.True(t, ok)

	branches, err := repo.LocalBranches()
	require.NoError(t, err)
	require.Len(t, branches, 3)
	require.Equal(t, Branch{Name: current, IsCurrent: true}, branches[0])
	require.Equal(t, "alpha", branches[1].Name)
	require.Equal(t, "zeta", branches[2].Name)
	require.False(t, branches[1].IsCurrent)
}

func TestCommitHistory_MostRecentFirstWithLimit(t *testing.T) {
	tr := newTestRepo(t)
	tr.write("a.txt", "1\n")
	first := tr.commitAll("first\n\nbody text")
	tr.write("a.txt", "2\n")
	second := tr.commitAll("second")
	tr.write("a.txt", "3\n")
	third := tr.commitAll("third")

	repo := tr.open()
	branch, _ := repo.CurrentBranch()

	all, err := repo.CommitHistory(branch, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, third, all[0].Hash)
	require.Equal(t, second, all[1].Hash)
	require.Equal(t, first, all[2].Hash)
	require.Equal(t, "first", all[2].Subject)
	require.Equal(t, first[:7], all[2].ShortHash)
	require.Equal(t, "Test User", all[2].Author)
	require.False(t, all[0].IsLiveChanges)

	limited, err := repo.CommitHistory(branch, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)

	viaHead, err := repo.CommitHistory("", 10)
	require.NoError(t, err)
	require.Equal(t, all, viaHead)
}

func TestCommitHistory_OtherBranch(t *testing.T) {
	tr := newTestRepo(t)
	tr.write("a.txt", "1\n")
	first := tr.commitAll("first")
	tr.branch("old", first)
	tr.write("a.txt", "2\n")
	tr.commitAll("second")

	repo := tr.open()
	commits, err := repo.CommitHistory("old", 10)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	require.Equal(t, first, commits[0].Hash)

	_, err = repo.CommitHistory("missing", 10)
	require.Error(t, err)
}

func TestResolveCommit(t *testing.T) {
	tr := newTestRepo(t)
	tr.write("a.txt", "1\n")
	hash := tr.commitAll("first")

	repo := tr.open()
	got, err := repo.ResolveCommit(hash[:7])
	require.NoError(t, err)
	require.Equal(t, hash, got)

	_, err = repo.ResolveCommit("does-not-exist")
	require.ErrorIs(t, err, ErrNoCommit)
}
