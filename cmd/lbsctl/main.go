package main

import (
	"os"

	"github.com/lbs-gateway/cmd/lbsctl/app"
)

func main() {
	if err := app.NewLBSCtlCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
