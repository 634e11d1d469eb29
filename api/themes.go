package api

import "github.com/charmbracelet/lipgloss"

// Theme defines color schemes and styles
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#8A2BE2"), // BlueViolet
		Secondary: lipgloss.Color("#4169E1"), // RoyalBlue
		Success:   lipgloss.Color("#32CD32"), // LimeGreen
		Warning:   lipgloss.Color("#FFD700"), // Gold
		Error:     lipgloss.Color("#FF6347"), // Tomato
		Info:      lipgloss.Color("#00CED1"), // DarkTurquoise
		Muted:     lipgloss.Color("#808080"), // Gray
	}
}

// DarkTheme returns a dark color theme
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#BB86FC"),
		Secondary: lipgloss.Color("#03DAC6"),
		Success:   lipgloss.Color("#4CAF50"),
		Warning:   lipgloss.Color("#FF9800"),
		Error:     lipgloss.Color("#F44336"),
		Info:      lipgloss.Color("#2196F3"),
		Muted:     lipgloss.Color("#9E9E9E"),
	}
}

// Resolve maps a style token to a hex color, returning "" for unknown tokens
func (t Theme) Resolve(token string) string {
	switch token {
	case "primary":
		return string(t.Primary)
	case "secondary":
		return string(t.Secondary)
	case "success":
		return string(t.Success)
	case "warning":
		return string(t.Warning)
	case "error":
		return string(t.Error)
	case "info":
		return string(t.Info)
	case "muted":
		return string(t.Muted)
	}
	if len(token) > 1 && token[0] == '#' {
		return token
	}
	return ""
}

// Style returns a lipgloss style for a theme role
func (t Theme) Style(role string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if hex := t.Resolve(role); hex != "" {
		style = style.Foreground(lipgloss.Color(hex))
	}
	return style
}
