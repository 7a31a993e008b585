package styles

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	// Tiered background colors (darkest → lightest) for visual depth.
	Background        lipgloss.Color // Root/base, fills the entire terminal
	BackgroundPanel   lipgloss.Color // Panel headers and the status bar
	BackgroundElement lipgloss.Color // Branch picker

	Foreground   lipgloss.Color
	Subtext      lipgloss.Color
	Border       lipgloss.Color
	Selection    lipgloss.Color
	Accent       lipgloss.Color
	BranchName   lipgloss.Color
	Head         lipgloss.Color
	LineNumber   lipgloss.Color
	DiffAdd      lipgloss.Color
	DiffRemove   lipgloss.Color
	DiffContext  lipgloss.Color
	DiffAddBg    lipgloss.Color
	DiffRemoveBg lipgloss.Color
	HunkHeader   lipgloss.Color
	CommitHash   lipgloss.Color
	LiveChanges  lipgloss.Color
	StatusAdded  lipgloss.Color
	StatusDelete lipgloss.Color
	StatusModify lipgloss.Color
}

func CatppuccinMocha() Theme {
	return Theme{
		Background:        lipgloss.Color("#1e1e2e"), // Catppuccin Base
		BackgroundPanel:   lipgloss.Color("#181825"), // Catppuccin Mantle (panels)
		BackgroundElement: lipgloss.Color("#11111b"), // Catppuccin Crust (deepest)

		Foreground:   lipgloss.Color("#cdd6f4"),
		Subtext:      lipgloss.Color("#a6adc8"),
		Border:       lipgloss.Color("#313244"),
		Selection:    lipgloss.Color("#45475a"),
		Accent:       lipgloss.Color("#89b4fa"),
		BranchName:   lipgloss.Color("#a6e3a1"),
		Head:         lipgloss.Color("#cba6f7"),
		LineNumber:   lipgloss.Color("#6c7086"),
		DiffAdd:      lipgloss.Color("#a6e3a1"),
		DiffRemove:   lipgloss.Color("#f38ba8"),
		DiffContext:  lipgloss.Color("#585b70"),
		DiffAddBg:    lipgloss.Color("#1a2e1a"),
		DiffRemoveBg: lipgloss.Color("#2e1a1a"),
		HunkHeader:   lipgloss.Color("#94e2d5"),
		CommitHash:   lipgloss.Color("#fab387"),
		LiveChanges:  lipgloss.Color("#f9e2af"),
		StatusAdded:  lipgloss.Color("#a6e3a1"),
		StatusDelete: lipgloss.Color("#f38ba8"),
		StatusModify: lipgloss.Color("#f9e2af"),
	}
}

// Darcula is a dark 256-colour palette in the style of JetBrains Darcula.
func Darcula() Theme {
	return Theme{
		Background:        lipgloss.Color("235"),
		BackgroundPanel:   lipgloss.Color("236"),
		BackgroundElement: lipgloss.Color("237"),

		Foreground:   lipgloss.Color("252"),
		Subtext:      lipgloss.Color("245"),
		Border:       lipgloss.Color("240"),
		Selection:    lipgloss.Color("24"),
		Accent:       lipgloss.Color("75"),
		BranchName:   lipgloss.Color("114"),
		Head:         lipgloss.Color("141"),
		LineNumber:   lipgloss.Color("243"),
		DiffAdd:      lipgloss.Color("114"),
		DiffRemove:   lipgloss.Color("203"),
		DiffContext:  lipgloss.Color("245"),
		DiffAddBg:    lipgloss.Color("22"),
		DiffRemoveBg: lipgloss.Color("52"),
		HunkHeader:   lipgloss.Color("73"),
		CommitHash:   lipgloss.Color("179"),
		LiveChanges:  lipgloss.Color("221"),
		StatusAdded:  lipgloss.Color("114"),
		StatusDelete: lipgloss.Color("203"),
		StatusModify: lipgloss.Color("179"),
	}
}

func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha()
	case "darcula":
		return Darcula()
	default:
		return CatppuccinMocha()
	}
}
