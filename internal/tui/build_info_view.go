// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

func renderBuildInfoWindow(text *i18n.Localizer, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(text.Tf(i18n.MsgBuildVersion, map[string]any{"Value": info.BuildVersion()}))
	b.WriteString("\n")
	b.WriteString(text.Tf(i18n.MsgBuildDate, map[string]any{"Value": info.BuildDate()}))
	b.WriteString("\n")
	b.WriteString(text.Tf(i18n.MsgBuildCommit, map[string]any{"Value": info.BuildCommit()}))

	return renderPage(text.T(i18n.MsgBuildInfoTitle), overlayBoxStyle.Render(b.String()), "esc/f1")
}
