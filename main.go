// Package main is the entry point for the hikari application.
package main

import (
	"github.com/FEAR939/Hikari-DoodStream/cmd"
	"github.com/FEAR939/Hikari-DoodStream/config"
	"github.com/FEAR939/Hikari-DoodStream/log"
	"github.com/FEAR939/Hikari-DoodStream/network"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
