package display

import (
	"fmt"
	"os"

	"github.com/backmassage/splitscreen/internal/term"
)

const banner = ` ____        _ _ _    ____
/ ___| _ __ | (_) |_ / ___|  ___ _ __ ___  ___ _ __
\___ \| '_ \| | | __|\___ \ / __| '__/ _ \/ _ \ '_ \
 ___) | |_) | | | |_  ___) | (__| | |  __/  __/ | | |
|____/| .__/|_|_|\__||____/ \___|_|  \___|\___|_| |_|
      |_|
`

// PrintBanner prints the ASCII art banner, magenta when colors are on.
// It goes to stderr: stdout may carry the rendered byte stream.
func PrintBanner() {
	term.Magenta.Fprint(os.Stderr, banner)
	fmt.Fprintln(os.Stderr)
}
