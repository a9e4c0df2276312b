package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/makotogo/people/internal/cli"
	"github.com/makotogo/people/internal/store/sqlstore"
)

func main() {
	// Root flags (apply to every subcommand)
	dbPath := flag.String("db", sqlstore.DefaultFileName, "path to the record store")
	plain := flag.Bool("plain", false, "print the list instead of opening the screen")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		DBPath: *dbPath,
		Plain:  *plain,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
