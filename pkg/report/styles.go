package report

import "github.com/charmbracelet/lipgloss"

var colorSuccess = lipgloss.Color("#00B785")
var colorFailed = lipgloss.Color("#e1244c")

var styleOK = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleNotSet = lipgloss.NewStyle().Foreground(lipgloss.Color("#5D689C"))
var styleMessage = lipgloss.NewStyle().PaddingLeft(4).Foreground(colorFailed)
