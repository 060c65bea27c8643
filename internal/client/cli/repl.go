package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	Month(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Day(ctx context.Context, args []string) error
	Today(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  month [YYYY-MM]   show a month (default: the selected one)
  next | prev       move one month forward / back
  day [YYYY-MM-DD]  select a day and list its events
  today             select today
  add               create an event on the selected day
  edit <id>         change an event
  delete <id>       remove an event
  clear             remove all events
  export <file>     write all events to an .ics file
  import <file>     add the events of an .ics file
  exit | quit       leave the program`

// runREPL reads commands line by line from r and dispatches them to a until
// EOF or "exit"/"quit". Handlers report their own errors to the user, so
// returned errors are dropped here.
func runREPL(ctx context.Context, a execIface, promptFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(w, promptFn())

		line, err := readLine(r)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, helpText)
		case "m", "month":
			_ = a.Month(ctx, args)
		case "n", "next":
			_ = a.Next(ctx)
		case "p", "prev":
			_ = a.Prev(ctx)
		case "d", "day":
			_ = a.Day(ctx, args)
		case "today":
			_ = a.Today(ctx)
		case "add":
			_ = a.Add(ctx)
		case "edit":
			_ = a.Edit(ctx, args)
		case "delete", "rm":
			_ = a.Delete(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "export":
			_ = a.Export(ctx, args)
		case "import":
			_ = a.Import(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
