package ui

import "github.com/charmbracelet/lipgloss/v2"

// Color constants
const (
	ColorBlack      = "0"
	ColorDarkerBlue = "4"
	ColorCyan       = "6"
	ColorGrey       = "7"
	ColorRed        = "9"
	ColorWhite      = "15"
)

// Common styles
var (
	// Grid styles
	GridHeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorDarkerBlue)).
			Foreground(lipgloss.Color(ColorGrey)).
			Bold(true)

	GridRowStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorDarkerBlue)).
			Foreground(lipgloss.Color(ColorGrey))

	GridCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorCyan)).
			Foreground(lipgloss.Color(ColorBlack))

	GridSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("12")).
				Foreground(lipgloss.Color(ColorBlack))

	GridDropTargetStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorGrey)).
				Foreground(lipgloss.Color(ColorBlack))

	GridDragSourceStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorDarkerBlue)).
				Foreground(lipgloss.Color(ColorWhite)).
				Bold(true).
				Underline(true)

	// Popover menu styles
	MenuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorCyan)).
			BorderBackground(lipgloss.Color(ColorDarkerBlue)).
			Background(lipgloss.Color(ColorDarkerBlue))

	MenuItemStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorDarkerBlue)).
			Foreground(lipgloss.Color(ColorGrey)).
			Padding(0, 1)

	MenuItemHoverStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorCyan)).
				Foreground(lipgloss.Color(ColorBlack)).
				Padding(0, 1)

	// Function key styles
	FunctionKeyStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorBlack)).
				Padding(0, 0, 0, 1)

	FunctionKeyDescriptionStyle = lipgloss.NewStyle().
					Background(lipgloss.Color(ColorCyan)).
					Foreground(lipgloss.Color(ColorBlack)).
					Padding(0, 1, 0, 0)

	FunctionKeyDisabledStyle = lipgloss.NewStyle().
					Background(lipgloss.Color(ColorDarkerBlue)).
					Foreground(lipgloss.Color(ColorGrey)).
					Padding(0, 1, 0, 0)

	FunctionKeyBarStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorBlack)).
				Foreground(lipgloss.Color(ColorGrey))

	FunctionKeyTitleStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorDarkerBlue)).
				Foreground(lipgloss.Color(ColorWhite)).
				Bold(true)

	// Toast styles
	ToastStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("196")).
			Foreground(lipgloss.White).
			Bold(true)

	ToastInfoStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorCyan)).
			Foreground(lipgloss.Color(ColorBlack))

	// Pager content style
	PagerContentStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorDarkerBlue)).
				Foreground(lipgloss.Color(ColorGrey))
)
