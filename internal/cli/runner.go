package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/makotogo/people/internal/generator"
	"github.com/makotogo/people/internal/store/sqlstore"
	"github.com/makotogo/people/internal/ui"
)

// Options carry the root flags into every subcommand.
type Options struct {
	DBPath string // store location
	Plain  bool   // ls prints instead of opening the screen
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(opt)

	case "add":
		n := 1
		if len(a) > 1 {
			ui.Fail("usage: people add [count]")
			return 2
		}
		if len(a) == 1 {
			v, err := strconv.Atoi(a[0])
			if err != nil || v < 1 {
				ui.Fail("add: not a positive number: " + a[0])
				return 2
			}
			n = v
		}
		return doAdd(opt, n)

	case "wipe":
		if len(a) != 0 {
			ui.Fail("usage: people wipe")
			return 2
		}
		return doWipe(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`people - a tiny demo of a list screen over a local store

Usage:
  people [flags] <subcommand> [args]

Subcommands:
  ls                 Show the people list (interactive screen)
  add [count]        Add one (or count) randomly generated people
  wipe               Delete all people

Flags:
  -db <path>         Store location (default %s)
  -plain             ls prints the list instead of opening the screen
  -v                 Debug logging

Examples:
  people ls
  people add 5
  people wipe
`, sqlstore.DefaultFileName)
}

func openStore(opt Options) (*sqlstore.Store, int) {
	logrus.Debugf("using store at %s", opt.DBPath)
	st, err := sqlstore.Open(opt.DBPath)
	if err != nil {
		ui.Fail("open store: " + err.Error())
		return nil, 1
	}
	return st, 0
}

func doList(opt Options) int {
	st, code := openStore(opt)
	if code != 0 {
		return code
	}
	defer st.Close()

	if opt.Plain {
		people, err := st.FetchAll()
		if err != nil {
			ui.Fail("fetch: " + err.Error())
			return 1
		}
		lines := make([]string, 0, len(people)+1)
		lines = append(lines, fmt.Sprintf("People (%d)", len(people)))
		for _, p := range people {
			lines = append(lines, ui.Row(p))
		}
		fmt.Println(ui.Panel(lines))
		return 0
	}

	// The interactive screen; it re-reads the store after every action.
	if err := ui.Run(st); err != nil {
		ui.Fail("screen: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(opt Options, n int) int {
	st, code := openStore(opt)
	if code != 0 {
		return code
	}
	defer st.Close()

	for _, p := range generator.NewPeople(n) {
		if err := st.Create(p); err != nil {
			ui.Fail("create: " + err.Error())
			return 1
		}
		ui.OK("Person created: " + p.String())
	}
	return 0
}

func doWipe(opt Options) int {
	st, code := openStore(opt)
	if code != 0 {
		return code
	}
	defer st.Close()

	n, err := st.DeleteAll()
	if err != nil {
		ui.Fail("wipe: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("All (%d) people deleted!", n))
	return 0
}
