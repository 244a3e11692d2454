package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Shares(ctx context.Context) error
	Cached(ctx context.Context) error
	ShowShare(ctx context.Context, args []string) error
	CreateShare(ctx context.Context, args []string) error
	RetitleShare(ctx context.Context, args []string) error
	RemoveShare(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	RemoveFile(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the scanner, parses the first token as the command
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". The "cached" listing works before login; everything else except
// "login" requires a session.
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, shares, cached, show, create, retitle, rm, upload, download, rmfile, exit")
			} else {
				printlnFn("Available commands: login, cached, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "cached":
			_ = a.Cached(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			switch cmd {
			case "whoami":
				_ = a.Whoami(ctx)

			case "shares", "l":
				_ = a.Shares(ctx)

			case "show":
				_ = a.ShowShare(ctx, args)

			case "create":
				_ = a.CreateShare(ctx, args)

			case "retitle":
				_ = a.RetitleShare(ctx, args)

			case "rm":
				_ = a.RemoveShare(ctx, args)

			case "upload":
				_ = a.Upload(ctx, args)

			case "download":
				_ = a.Download(ctx, args)

			case "rmfile":
				_ = a.RemoveFile(ctx, args)

			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
