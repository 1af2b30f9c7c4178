// Package main prints the icon catalog or locale coverage report.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/uikit/internal/platform/config"
	"github.com/louisbranch/uikit/internal/tools/catalogreport"
)

func main() {
	cfg, err := catalogreport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := catalogreport.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("report: %v", err)
	}
}
