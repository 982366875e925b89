// Package main is the entry point for vidplay.
package main

import (
	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/cmd"
	"github.com/vidplay-cli/vidplay/config"
	"github.com/vidplay-cli/vidplay/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
