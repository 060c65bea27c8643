package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) Month(_ context.Context, args []string) error  { return f.record("month", args) }
func (f *fakeExec) Next(context.Context) error                     { return f.record("next", nil) }
func (f *fakeExec) Prev(context.Context) error                     { return f.record("prev", nil) }
func (f *fakeExec) Day(_ context.Context, args []string) error    { return f.record("day", args) }
func (f *fakeExec) Today(context.Context) error                    { return f.record("today", nil) }
func (f *fakeExec) Add(context.Context) error                      { return f.record("add", nil) }
func (f *fakeExec) Edit(_ context.Context, args []string) error   { return f.record("edit", args) }
func (f *fakeExec) Delete(_ context.Context, args []string) error { return f.record("delete", args) }
func (f *fakeExec) Clear(context.Context) error                    { return f.record("clear", nil) }
func (f *fakeExec) Export(_ context.Context, args []string) error { return f.record("export", args) }
func (f *fakeExec) Import(_ context.Context, args []string) error { return f.record("import", args) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"month 2024-03",
		"",
		"n",
		"prev",
		"day 2024-03-01",
		"today",
		"add",
		"edit evt-1",
		"rm evt-1",
		"clear",
		"export out.ics",
		"import in.ics",
		"foobar",
		"exit",
		"day never-reached",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "> " }, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, []string{
		"month 2024-03",
		"next",
		"prev",
		"day 2024-03-01",
		"today",
		"add",
		"edit evt-1",
		"delete evt-1",
		"clear",
		"export out.ics",
		"import in.ics",
	}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "Available commands:")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("next")), &out)

	assert.Equal(t, []string{"next"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("next\nprev\n")), &bytes.Buffer{})

	assert.Empty(t, exec.calls)
}
