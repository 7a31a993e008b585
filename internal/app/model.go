package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/gitti/internal/config"
	"github.com/yourusername/gitti/internal/log"
	"github.com/yourusername/gitti/internal/nav"
	"github.com/yourusername/gitti/internal/ui/components/commitinfo"
	"github.com/yourusername/gitti/internal/ui/components/commitlist"
	"github.com/yourusername/gitti/internal/ui/components/diffview"
	"github.com/yourusername/gitti/internal/ui/components/filelist"
	"github.com/yourusername/gitti/internal/ui/components/modals"
	"github.com/yourusername/gitti/internal/ui/components/statusbar"
	"github.com/yourusername/gitti/internal/ui/keys"
	"github.com/yourusername/gitti/internal/ui/layout"
	"github.com/yourusername/gitti/internal/ui/styles"
)

// ScrollStep is how many diff lines one scroll key or wheel notch moves.
const ScrollStep = 3

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type Model struct {
	config *config.Config
	nav    *nav.Navigator
	styles *styles.Styles
	layout *layout.Layout
	keyMap keys.KeyMap
	geom   layout.Geometry
	mode   commitinfo.Mode
	now    func() time.Time

	commitList commitlist.Model
	fileList   filelist.Model
	diffView   diffview.Model
	statusBar  statusbar.Model

	helpModal   modals.HelpModal
	branchModal modals.BranchModal

	mouse  bool
	width  int
	height int
	ready  bool
}

// New builds the model around an already loaded navigator.
func New(cfg *config.Config, navigator *nav.Navigator) Model {
	theme := styles.GetTheme(cfg.UI.Theme)
	st := styles.NewStyles(theme)
	keyMap := keys.FromConfig(cfg.Keybindings)

	return Model{
		config:      cfg,
		nav:         navigator,
		styles:      st,
		keyMap:      keyMap,
		mode:        commitinfo.Mode{Staged: cfg.Diff.Staged, Baseline: cfg.Diff.Commit},
		now:         time.Now,
		layout:      layout.New(0, 0, theme.Background, theme.Border),
		commitList:  commitlist.New(st, 0, 0),
		fileList:    filelist.New(st, 0, 0),
		diffView:    diffview.New(st, 0, 0),
		statusBar:   statusbar.New(st, keyMap.ShortHelp(), 0),
		helpModal:   modals.NewHelpModal(st, keyMap),
		branchModal: modals.NewBranchModal(st),
		mouse:       cfg.UI.Mouse,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		return m.handleTick(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.helpModal.IsVisible() {
			if key.Matches(msg, m.keyMap.Help, m.keyMap.Cancel) {
				m.helpModal.Hide()
			} else if key.Matches(msg, m.keyMap.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch mode := m.nav.Selection().Mode; mode {
		case nav.ModeBranchPicker:
			return m.handleBranchKey(msg)
		case nav.ModeNormal:
			return m.handleKey(msg)
		default:
			log.Warn(log.CatUI, "key in unknown mode", "mode", mode.String())
			return m, nil
		}

	case clearMessageMsg:
		m.statusBar.ClearMessage()
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sel := m.nav.Selection()

	var commitsPanel string
	switch sel.Mode {
	case nav.ModeBranchPicker:
		picker := m.branchModal
		picker.SetBranches(m.nav.Branches(), sel.BranchIndex, sel.BranchScroll)
		commitsPanel = picker.View()
	case nav.ModeNormal:
		commits := m.commitList
		commits.SetCommits(m.nav.Branch(), m.nav.Commits(), sel.CommitIndex, sel.CommitScroll)
		commitsPanel = commits.View()
	}

	files := m.fileList
	files.SetFiles(m.nav.Files(), sel.FileIndex, sel.FileScroll)

	var diffPane string
	if m.helpModal.IsVisible() {
		diffPane = m.helpModal.View()
	} else {
		dv := m.diffView
		path, summary := "", ""
		if f, ok := m.nav.SelectedFile(); ok {
			path = f.Path
		}
		if c, ok := m.nav.SelectedCommit(); ok {
			summary = commitinfo.Summary(c, m.mode, m.now())
		}
		dv.SetContent(path, summary, m.nav.Hunks())
		dv.SetScroll(sel.DiffScroll)
		diffPane = dv.View()
	}

	status := m.statusBar
	status.SetBranch(m.nav.Branch())
	status.SetMouse(m.mouse)
	status.SetScroll(sel.DiffScroll, m.nav.TotalDiffLines(), m.nav.Viewport().DiffLines)

	return m.layout.Render(commitsPanel, files.View(), diffPane, status.View())
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout.SetSize(m.width, m.height)
	m.geom = m.layout.Calculate()

	m.commitList.SetSize(m.geom.Commits.Width, m.geom.Commits.Height)
	m.branchModal.SetSize(m.geom.Commits.Width, m.geom.Commits.Height)
	m.fileList.SetSize(m.geom.Files.Width, m.geom.Files.Height)
	m.diffView.SetSize(m.geom.Diff.Width, m.geom.Diff.Height)
	m.helpModal.SetSize(m.geom.Diff.Width, m.geom.Diff.Height)
	m.statusBar.SetWidth(m.width)

	m.nav.SetViewport(nav.Viewport{
		Branches:  layout.ListRows(m.geom.Commits),
		Commits:   layout.ListRows(m.geom.Commits),
		Files:     layout.ListRows(m.geom.Files),
		DiffLines: m.diffView.BodyHeight(),
	})
	m.ready = true
	return m, nil
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	res := m.nav.Tick(time.Time(msg))
	if res.Repaint() {
		return m, tea.Batch(tea.ClearScreen, m.tickCmd())
	}
	return m, m.tickCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.helpModal.Toggle()
	case key.Matches(msg, m.keyMap.Up):
		m.nav.SelectFile(-1)
	case key.Matches(msg, m.keyMap.Down):
		m.nav.SelectFile(1)
	case key.Matches(msg, m.keyMap.CommitUp):
		m.nav.SelectCommit(-1)
	case key.Matches(msg, m.keyMap.CommitDown):
		m.nav.SelectCommit(1)
	case key.Matches(msg, m.keyMap.ScrollUp):
		m.nav.ScrollDiff(-ScrollStep)
	case key.Matches(msg, m.keyMap.ScrollDown):
		m.nav.ScrollDiff(ScrollStep)
	case key.Matches(msg, m.keyMap.PageUp):
		m.nav.PageDiff(-1)
	case key.Matches(msg, m.keyMap.PageDown):
		m.nav.PageDiff(1)
	case key.Matches(msg, m.keyMap.Top):
		m.nav.ScrollDiffTo(0)
	case key.Matches(msg, m.keyMap.Bottom):
		m.nav.ScrollDiffTo(m.nav.MaxDiffScroll())
	case key.Matches(msg, m.keyMap.Branch):
		m.nav.EnterBranchPicker()
	case key.Matches(msg, m.keyMap.ToggleMouse):
		return m.toggleMouse()
	case key.Matches(msg, m.keyMap.CopyPath):
		return m.handleCopyPath()
	case key.Matches(msg, m.keyMap.CopyCommit):
		return m.handleCopyCommit()
	}
	return m, nil
}

func (m Model) handleBranchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Cancel, m.keyMap.Branch):
		m.nav.CancelBranchPicker()
	case key.Matches(msg, m.keyMap.Up, m.keyMap.ScrollUp, m.keyMap.CommitUp):
		m.nav.MoveBranchCursor(-1)
	case key.Matches(msg, m.keyMap.Down, m.keyMap.ScrollDown, m.keyMap.CommitDown):
		m.nav.MoveBranchCursor(1)
	case key.Matches(msg, m.keyMap.Select):
		m.nav.SelectBranch(m.nav.Selection().BranchIndex)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || !m.mouse || m.helpModal.IsVisible() {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.nav.ScrollDiff(-ScrollStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.nav.ScrollDiff(ScrollStep)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	region, row := m.geom.Hit(msg.X, msg.Y)
	mode := m.nav.Selection().Mode
	switch region {
	case layout.RegionCommits:
		switch mode {
		case nav.ModeBranchPicker:
			m.nav.ClickBranch(row, layout.HeaderHeight)
		case nav.ModeNormal:
			m.nav.ClickCommit(row, layout.HeaderHeight)
		}
	case layout.RegionFiles:
		if mode == nav.ModeNormal {
			m.nav.ClickFile(row, layout.HeaderHeight)
		}
	}
	return m, nil
}

func (m Model) toggleMouse() (tea.Model, tea.Cmd) {
	m.mouse = !m.mouse
	log.Debug(log.CatUI, "mouse toggled", "enabled", m.mouse)
	if m.mouse {
		return m, tea.EnableMouseCellMotion
	}
	return m, tea.DisableMouse
}

func (m Model) handleCopyPath() (tea.Model, tea.Cmd) {
	file, ok := m.nav.SelectedFile()
	if !ok {
		return m, nil
	}
	return m.copy(file.Path, "Copied path: "+file.Path)
}

func (m Model) handleCopyCommit() (tea.Model, tea.Cmd) {
	commit, ok := m.nav.SelectedCommit()
	if !ok {
		return m, nil
	}
	if commit.IsLiveChanges {
		m.statusBar.SetMessage("Cannot copy id for local changes")
		return m, m.clearMessageAfter(3 * time.Second)
	}
	return m.copy(commit.Hash, "Copied commit: "+commit.ShortHash)
}

func (m Model) copy(text, done string) (tea.Model, tea.Cmd) {
	if err := writeClipboard(text); err != nil {
		log.ErrorErr(log.CatUI, "clipboard write failed", err)
		m.statusBar.SetMessage("Clipboard unavailable")
	} else {
		m.statusBar.SetMessage(done)
	}
	return m, m.clearMessageAfter(3 * time.Second)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) clearMessageAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// tickMsg drives the poll loop; reconciliation runs on it when due.
type tickMsg time.Time

// clearMessageMsg is sent after a delay to clear the status bar message.
type clearMessageMsg struct{}
