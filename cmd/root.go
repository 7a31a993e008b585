package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yourusername/gitti/internal/app"
	"github.com/yourusername/gitti/internal/config"
	"github.com/yourusername/gitti/internal/diff"
	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/log"
	"github.com/yourusername/gitti/internal/nav"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply does not race with the input loop.
	_ = lipgloss.HasDarkBackground()
}

var version = "dev"

// NoChangesMessage is printed instead of starting the UI when there is
// nothing to show.
const NoChangesMessage = "No changes detected."

type flags struct {
	configFile string
	repoPath   string
	logFile    string
	debug      bool
	staged     bool
	commit     string
	context    int
	noMouse    bool
}

// NewRootCmd builds the gitti command. Output is written to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "gitti",
		Short: "A terminal viewer for git diffs",
		Long: `gitti shows the changes of a repository in a terminal UI: commits of a branch
on the left, the files they touch below, and the hunks of the selected file on
the right. Uncommitted work is listed first as "Local Changes" and refreshes
while you edit.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, out)
		},
	}

	cmd.Flags().StringVar(&f.configFile, "config", "",
		"config file (default: ~/.config/gitti/config.yaml)")
	cmd.Flags().StringVarP(&f.repoPath, "repo", "r", ".",
		"path inside the repository to view")
	cmd.Flags().BoolVarP(&f.staged, "staged", "s", false,
		"show staged changes only")
	cmd.Flags().StringVarP(&f.commit, "commit", "c", "",
		"compare local changes against this commit")
	cmd.Flags().IntVarP(&f.context, "context", "C", 5,
		"number of context lines around each change")
	cmd.Flags().BoolVar(&f.noMouse, "no-mouse", false,
		"start with mouse capture disabled")
	cmd.Flags().BoolVar(&f.debug, "debug", false,
		"write a debug log (also enabled by GITTI_DEBUG)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "gitti-debug.log",
		"debug log path")

	return cmd
}

// Execute runs the root command against stdout.
func Execute() error {
	return NewRootCmd(os.Stdout).Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}

func run(cmd *cobra.Command, f *flags, out io.Writer) error {
	if f.debug || log.EnabledFromEnv() {
		cleanup, err := log.Init(f.logFile)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)
	if cfg.Diff.ContextLines < 0 {
		return fmt.Errorf("invalid --context %d: must not be negative", cfg.Diff.ContextLines)
	}

	navigator, err := startup(cfg, f.repoPath)
	if err != nil {
		return err
	}

	if !navigator.HasFiles() {
		_, _ = fmt.Fprintln(out, NoChangesMessage)
		return nil
	}

	model := app.New(cfg, navigator)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("staged") {
		cfg.Diff.Staged = f.staged
	}
	if changed("commit") {
		cfg.Diff.Commit = f.commit
	}
	if changed("context") {
		cfg.Diff.ContextLines = f.context
	}
	if changed("no-mouse") {
		cfg.UI.Mouse = !f.noMouse
	}
}

// startup opens the repository and performs the initial load. Any error here
// is fatal.
func startup(cfg *config.Config, path string) (*nav.Navigator, error) {
	repo, err := git.Discover(path)
	if err != nil {
		return nil, err
	}
	repo.SetExcludePrefixes(cfg.Diff.ExcludePrefixes)

	baseline := ""
	if cfg.Diff.Commit != "" {
		baseline, err = repo.ResolveCommit(cfg.Diff.Commit)
		if err != nil {
			return nil, err
		}
		cfg.Diff.Commit = baseline
	}

	loader := diff.NewLoader(repo, diff.Options{
		Context:     cfg.Diff.ContextLines,
		SyntaxTheme: cfg.UI.SyntaxTheme,
		CacheTTL:    cfg.CacheTTL(),
	})

	navigator := nav.New(repo, loader, nav.Options{
		Staged:          cfg.Diff.Staged,
		Baseline:        baseline,
		HistoryLimit:    cfg.Performance.MaxCommits,
		RefreshInterval: cfg.RefreshInterval(),
	})
	if err := navigator.Load(); err != nil {
		return nil, err
	}

	log.Info(log.CatGit, "startup complete",
		"root", repo.Root(),
		"commits", len(navigator.Commits()),
		"files", len(navigator.Files()))
	return navigator, nil
}
