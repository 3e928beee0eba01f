package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ekinoz/happy/internal/auth"
	"github.com/ekinoz/happy/internal/config"
	"github.com/ekinoz/happy/internal/logging"
	"github.com/ekinoz/happy/internal/model"
	"github.com/ekinoz/happy/internal/store"
	"github.com/ekinoz/happy/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Theme      string // overrides the configured color theme
	ConfigPath string // explicit config file, empty for the default search
}

// app is everything the subcommands need: config, logger, resolved
// session, and the store (nil when the backend failed to open — the
// UI still runs, writes become no-ops).
type app struct {
	cfg     config.Config
	log     *zap.Logger
	session auth.Session
	store   store.Store
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd, a := "ls", args
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return bootstrap(opt).doList()

	case "add":
		if len(a) == 0 {
			fail("usage: happy add <text...>")
			return 2
		}
		return bootstrap(opt).doAdd(strings.Join(a, " "))

	case "rm":
		if len(a) != 1 {
			fail("usage: happy rm <id>")
			return 2
		}
		return bootstrap(opt).doRemove(a[0])

	case "whoami":
		return bootstrap(opt).doWhoAmI()
	}

	fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`happy - a tiny happy-things list

Usage:
  happy [subcommand] [args]

Subcommands:
  ls                 Show the list (interactive, default)
  add <text...>      Save a happy thing (text can be multiple words)
  rm <id>            Remove a saved happy thing by id
  whoami             Show the resolved identity

Examples:
  happy
  happy add "Petting a dog 🐶"
  happy whoami
`)
}

// bootstrap resolves config, identity, and the store. Every failure
// short of a broken config degrades instead of aborting: the list
// must stay usable without persistence.
func bootstrap(opt Options) *app {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		fail("config: " + err.Error())
		cfg = config.Config{}
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	ui.SetTheme(cfg.Theme)

	log := logging.New(cfg.BasePath)
	session := auth.Bootstrap(cfg.BasePath, cfg.Token, log)

	st, err := store.Open(cfg.BasePath, cfg.AppID, session.UserID, log)
	if err != nil {
		log.Warn("cli: open store, continuing without persistence", zap.Error(err))
		st = nil
	}
	return &app{cfg: cfg, log: log, session: session, store: st}
}

func (a *app) doList() int {
	if err := ui.Run(a.store, a.session, a.log); err != nil {
		fail("ui: " + err.Error())
		return 1
	}
	return 0
}

func (a *app) doAdd(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		fail("add: empty text")
		return 2
	}
	if a.store == nil {
		fail("add: store unavailable (offline)")
		return 1
	}
	it, err := a.store.Insert(context.Background(), text)
	if err != nil {
		a.log.Warn("cli: insert", zap.Error(err))
		fail("add: " + err.Error())
		return 1
	}
	ok("added " + it.ID)
	return 0
}

func (a *app) doRemove(id string) int {
	if model.IsDefaultID(id) {
		fail("rm: built-in items cannot be removed")
		return 2
	}
	if a.store == nil {
		fail("rm: store unavailable (offline)")
		return 1
	}
	if err := a.store.Delete(context.Background(), id); err != nil {
		a.log.Warn("cli: delete", zap.Error(err))
		fail("rm: " + err.Error())
		return 1
	}
	ok("removed")
	return 0
}

func (a *app) doWhoAmI() int {
	fmt.Printf("user: %s\n", a.session.UserID)
	fmt.Printf("source: %s\n", a.session.Source)
	if !a.session.Persisted() {
		fmt.Println(muted("identity is local-only; nothing persists across runs"))
	}
	return 0
}
