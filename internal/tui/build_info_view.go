package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ProjectKeeper"))
	for _, row := range info.Rows() {
		fmt.Fprintf(&b, "\n%-8s %s", row[0]+":", row[1])
	}

	return renderPage("О ПРОГРАММЕ", b.String(), "esc: назад")
}
