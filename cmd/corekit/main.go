package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/corekit/cmd/corekit/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
