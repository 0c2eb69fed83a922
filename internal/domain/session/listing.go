package session

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/vdrive/internal/domain/resolve"
	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
)

const (
	modeFolder = "d-----"
	modeFile   = "-a----"
)

// RenderListing formats a folder listing, folders first. A folder with no
// entries renders only the headers.
func RenderListing(at resolve.Working, l tree.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n    Directory: %s\n\n", at)
	fmt.Fprintf(&b, "%-6s %27s %14s %s\n", "Mode", "LastWriteTime", "Length", "Name")
	fmt.Fprintf(&b, "%-6s %27s %14s %s\n", "----", "-------------", "------", "----")
	for _, it := range l.Folders {
		fmt.Fprintf(&b, "%-6s %27s %14s %s\n", modeFolder, it.Timestamp, "", it.Name)
	}
	for _, it := range l.Files {
		fmt.Fprintf(&b, "%-6s %27s %14d %s\n", modeFile, it.Timestamp, it.Length, it.Name)
	}
	return b.String()
}
