package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	banner := ` ____  _            _
| __ )| | __ _  ___| | _____  ___ __ _ _ __
|  _ \| |/ _` + "`" + ` |/ __| |/ / __|/ __/ _` + "`" + ` | '_ \
| |_) | | (_| | (__|   <\__ \ (_| (_| | | | |
|____/|_|\__,_|\___|_|\_\___/\___\__,_|_| |_|
`
	_, _ = color.New(color.FgHiMagenta, color.Bold).Fprint(os.Stdout, banner)
	fmt.Fprintln(os.Stdout)
}
