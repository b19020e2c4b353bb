package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/conduit/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error
	Settings(ctx context.Context) error

	Feed(ctx context.Context, args []string) error
	Page(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	Tags(ctx context.Context) error

	Article(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Uncomment(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Profile(ctx context.Context, args []string) error
	Follow(ctx context.Context) error
}

const (
	guestHelp = `Available commands:
  feed [global|tag <t>|author <u>|favorited <u>]   list articles
  page <n> | next | prev                           move between pages
  tags                                             popular tags
  article <slug> | comments <slug>                 read an article
  profile <u> [favorites]                          show a profile
  register | login                                 sign up or sign in
  exit | quit`

	memberHelp = `Available commands:
  feed [mine|global|tag <t>|author <u>|favorited <u>]   list articles
  page <n> | next | prev                                move between pages
  fav <slug>                                            favorite or unfavorite
  tags                                                  popular tags
  article <slug> | comments <slug>                      read an article
  comment <slug> | uncomment <slug> <id>                add or delete a comment
  new | edit <slug> | delete <slug>                     write articles
  profile <u> [favorites] | follow                      profiles
  whoami [-v] | settings | logout [--forget]
  exit | quit`
)

// runREPL starts a simple read–eval–print loop for the Conduit CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are printed with report and never stop
// the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("conduit %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx, args)
		case "whoami":
			err = a.Whoami(ctx, args)
		case "settings":
			err = a.Settings(ctx)

		case "feed":
			err = a.Feed(ctx, args)
		case "page":
			err = a.Page(ctx, args)
		case "next", "n":
			err = a.Next(ctx)
		case "prev", "p":
			err = a.Prev(ctx)
		case "fav":
			err = a.Favorite(ctx, args)
		case "tags":
			err = a.Tags(ctx)

		case "article", "a":
			err = a.Article(ctx, args)
		case "comments":
			err = a.Comments(ctx, args)
		case "comment":
			err = a.Comment(ctx, args)
		case "uncomment":
			err = a.Uncomment(ctx, args)
		case "new":
			err = a.New(ctx)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)

		case "profile":
			err = a.Profile(ctx, args)
		case "follow":
			err = a.Follow(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		report(err)
	}
}

// report prints err as a single line, or as a list when the server sent
// several validation messages.
func report(err error) {
	if err == nil {
		return
	}
	lines := services.FormErrors(err)
	if len(lines) == 1 {
		printlnFn("Error:", lines[0])
		return
	}
	printlnFn("Errors:")
	for _, l := range lines {
		printlnFn("  -", l)
	}
}

// usageError is returned when a command is called with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }
