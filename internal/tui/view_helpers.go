package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// renderField renders one labelled form row with an optional error below it.
func renderField(label, input, errMsg string) string {
	row := labelStyle.Render(label) + " " + input
	if errMsg == "" {
		return row
	}
	return row + "\n" + labelStyle.Render("") + " " + errorStyle.Render(errMsg)
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
