// wintoast - desktop notifications from the command line

package main

import (
	"os"

	"github.com/wintoast/wintoast/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
