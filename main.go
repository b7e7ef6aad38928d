package main

import (
	"github.com/mj1618/forms-cli/cmd"

	_ "github.com/mj1618/forms-cli/internal/platform/snapshot"
)

func main() {
	cmd.Execute()
}
