package main

import (
	"os"

	"github.com/ishwari21/dash-unix-shell/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
