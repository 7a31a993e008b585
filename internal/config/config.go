package config

type Config struct {
	UI          UIConfig          `yaml:"ui" mapstructure:"ui"`
	Diff        DiffConfig        `yaml:"diff" mapstructure:"diff"`
	Refresh     RefreshConfig     `yaml:"refresh" mapstructure:"refresh"`
	Keybindings KeybindingsConfig `yaml:"keybindings" mapstructure:"keybindings"`
	Performance PerformanceConfig `yaml:"performance" mapstructure:"performance"`
}

type UIConfig struct {
	Theme       string `yaml:"theme" mapstructure:"theme"`
	SyntaxTheme string `yaml:"syntax_theme" mapstructure:"syntax_theme"`
	Mouse       bool   `yaml:"mouse" mapstructure:"mouse"`
}

type DiffConfig struct {
	ContextLines    int      `yaml:"context_lines" mapstructure:"context_lines"`
	Staged          bool     `yaml:"staged" mapstructure:"staged"`
	Commit          string   `yaml:"commit" mapstructure:"commit"`
	ExcludePrefixes []string `yaml:"exclude_prefixes" mapstructure:"exclude_prefixes"`
}

type RefreshConfig struct {
	IntervalMs int `yaml:"interval_ms" mapstructure:"interval_ms"`
	PollMs     int `yaml:"poll_ms" mapstructure:"poll_ms"`
}

type KeybindingsConfig struct {
	Quit        []string `yaml:"quit" mapstructure:"quit"`
	Help        []string `yaml:"help" mapstructure:"help"`
	Up          []string `yaml:"up" mapstructure:"up"`
	Down        []string `yaml:"down" mapstructure:"down"`
	CommitUp    []string `yaml:"commit_up" mapstructure:"commit_up"`
	CommitDown  []string `yaml:"commit_down" mapstructure:"commit_down"`
	ScrollUp    []string `yaml:"scroll_up" mapstructure:"scroll_up"`
	ScrollDown  []string `yaml:"scroll_down" mapstructure:"scroll_down"`
	PageUp      []string `yaml:"page_up" mapstructure:"page_up"`
	PageDown    []string `yaml:"page_down" mapstructure:"page_down"`
	Top         []string `yaml:"top" mapstructure:"top"`
	Bottom      []string `yaml:"bottom" mapstructure:"bottom"`
	Branch      []string `yaml:"branch" mapstructure:"branch"`
	Select      []string `yaml:"select" mapstructure:"select"`
	Cancel      []string `yaml:"cancel" mapstructure:"cancel"`
	ToggleMouse []string `yaml:"toggle_mouse" mapstructure:"toggle_mouse"`
	CopyPath    []string `yaml:"copy_path" mapstructure:"copy_path"`
	CopyCommit  []string `yaml:"copy_commit" mapstructure:"copy_commit"`
}

type PerformanceConfig struct {
	MaxCommits      int `yaml:"max_commits" mapstructure:"max_commits"`
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" mapstructure:"cache_ttl_seconds"`
}
