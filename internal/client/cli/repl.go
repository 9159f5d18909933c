package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Weather(ctx context.Context, city string) error
	Refresh(ctx context.Context) error
	Crops(ctx context.Context) error
	AddCrop(ctx context.Context) error
	DeleteCrop(ctx context.Context, id string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: weather [city], refresh, crops, addcrop, delcrop [id], whoami, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Prompts read by the commands share the same reader, so no input is lost
// between the loop and a command. The loop ends on EOF, "exit" or "quit".
// Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("alertaverde %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "weather", "w":
			_ = a.Weather(ctx, strings.Join(args, " "))

		case "refresh":
			_ = a.Refresh(ctx)

		case "crops", "l", "list":
			_ = a.Crops(ctx)

		case "addcrop":
			_ = a.AddCrop(ctx)

		case "delcrop":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.DeleteCrop(ctx, id)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "weather", "w", "refresh", "crops", "l", "list", "addcrop", "delcrop":
		return true
	}
	return false
}
