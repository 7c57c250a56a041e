package shell

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"sdos/hal"
	"sdos/sdos/console"
	"sdos/sdos/fstree"
)

type recDisplay struct {
	lines  []string
	clears int
}

func (d *recDisplay) PrintLine(text string) { d.lines = append(d.lines, text) }
func (d *recDisplay) Clear()                { d.clears++; d.lines = nil }

type script struct {
	lines []string
	err   error
}

func (r *script) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	l := r.lines[0]
	r.lines = r.lines[1:]
	return l, nil
}

type recLogger struct {
	lines []string
}

func (l *recLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }

func newTestService(t *testing.T, input ...string) (*Service, *recDisplay, *script) {
	t.Helper()
	disp := &recDisplay{}
	in := &script{lines: input}
	s, err := New(Config{
		Tree:    fstree.Default(),
		Display: disp,
		Input:   in,
		Logger:  &recLogger{},
		Version: "0.0.2",
		Now:     func() time.Time { return time.Date(2025, 10, 14, 7, 42, 36, 0, time.UTC) },
		Seed:    1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, disp, in
}

func TestUnknownTokenPrintsOneLine(t *testing.T) {
	s, disp, _ := newTestService(t)

	if err := s.Dispatch(context.Background(), "foo", []string{"bar"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(disp.lines) != 1 || disp.lines[0] != "'foo' not recognized" {
		t.Fatalf("lines=%q; want one not recognized line with the token as typed", disp.lines)
	}
	if s.Cwd() != `C:\` {
		t.Fatalf("Cwd()=%q; want %q", s.Cwd(), `C:\`)
	}
}

func TestDispatchIsCaseInsensitive(t *testing.T) {
	s, disp, _ := newTestService(t)
	if err := s.Dispatch(context.Background(), "eChO", []string{"hello", "world"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(disp.lines) != 1 || disp.lines[0] != "hello world" {
		t.Fatalf("lines=%q", disp.lines)
	}
}

func TestCD(t *testing.T) {
	tcs := []struct {
		name string
		from string
		args []string
		cwd  string
		out  []string
	}{
		{name: "no args", from: `C:\`, args: nil, cwd: `C:\`, out: []string{`Current directory: C:\`, "Usage: CD [directory]"}},
		{name: "parent at root", from: `C:\`, args: []string{".."}, cwd: `C:\`, out: []string{"Already at root"}},
		{name: "subdir", from: `C:\`, args: []string{"GAMES"}, cwd: `C:\GAMES`},
		{name: "missing", from: `C:\`, args: []string{"NOPE"}, cwd: `C:\`, out: []string{"Path not found"}},
		{name: "names keep case", from: `C:\`, args: []string{"games"}, cwd: `C:\`, out: []string{"Path not found"}},
		{name: "parent", from: `C:\GAMES`, args: []string{".."}, cwd: `C:\`},
		{name: "drive root", from: `C:\GAMES`, args: []string{`\`}, cwd: `C:\`},
		{name: "drive", from: `C:\BIN`, args: []string{"d:"}, cwd: `D:\`},
		{name: "missing drive", from: `C:\`, args: []string{"E:"}, cwd: `C:\`, out: []string{"Drive E: not found"}},
	}
	for _, tc := range tcs {
		s, disp, _ := newTestService(t)
		s.cwd = tc.from
		if err := s.Dispatch(context.Background(), "CD", tc.args); err != nil {
			t.Fatalf("%s: Dispatch: %v", tc.name, err)
		}
		if s.Cwd() != tc.cwd {
			t.Fatalf("%s: Cwd()=%q; want %q", tc.name, s.Cwd(), tc.cwd)
		}
		if strings.Join(disp.lines, "\n") != strings.Join(tc.out, "\n") {
			t.Fatalf("%s: lines=%q; want %q", tc.name, disp.lines, tc.out)
		}
		if !s.tree.Has(s.Cwd()) {
			t.Fatalf("%s: cwd %q not in tree", tc.name, s.Cwd())
		}
	}
}

func TestCDThenDir(t *testing.T) {
	s, disp, _ := newTestService(t, "CD GAMES", "DIR", "EXIT")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{
		`C:\>`,
		`C:\>CD GAMES`,
		`C:\GAMES>DIR`,
		`Directory of C:\GAMES`,
		"SNAKE.EXE        12KB",
		"ADVENTURE.EXE     8KB",
		`C:\GAMES>EXIT`,
		"shell halted.",
	}
	if strings.Join(disp.lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("lines=\n%s\nwant\n%s", strings.Join(disp.lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestExitStopsReading(t *testing.T) {
	s, disp, in := newTestService(t, "", "exit", "DIR")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(in.lines) != 1 {
		t.Fatalf("unread=%q; want DIR left unread", in.lines)
	}
	if last := disp.lines[len(disp.lines)-1]; last != "shell halted." {
		t.Fatalf("last line=%q; want halt message", last)
	}
	if disp.lines[1] != `C:\>` {
		t.Fatalf("empty line echo=%q; want bare prompt", disp.lines[1])
	}
}

func TestEndOfInputHalts(t *testing.T) {
	tcs := []struct {
		name string
		err  error
	}{
		{name: "eof"},
		{name: "read error", err: errors.New("uart gone")},
	}
	for _, tc := range tcs {
		s, disp, in := newTestService(t, "VER")
		in.err = tc.err
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("%s: Run: %v", tc.name, err)
		}
		want := []string{`C:\>`, `C:\>VER`, "PICO SDOS v0.0.2", "shell halted."}
		if strings.Join(disp.lines, "\n") != strings.Join(want, "\n") {
			t.Fatalf("%s: lines=%q; want %q", tc.name, disp.lines, want)
		}
	}
}

func TestCancelHalts(t *testing.T) {
	s, disp, _ := newTestService(t, "DIR")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(disp.lines) != 2 || disp.lines[1] != "shell halted." {
		t.Fatalf("lines=%q", disp.lines)
	}
}

func TestReboot(t *testing.T) {
	s, disp, _ := newTestService(t, "REBOOT", "DIR")
	if err := s.Run(context.Background()); !errors.Is(err, ErrReboot) {
		t.Fatalf("Run err=%v; want ErrReboot", err)
	}
	if last := disp.lines[len(disp.lines)-1]; last != "Soft reboot..." {
		t.Fatalf("last line=%q", last)
	}
}

func TestSimpleCommands(t *testing.T) {
	tcs := []struct {
		cmd  string
		args []string
		want []string
	}{
		{cmd: "VER", want: []string{"PICO SDOS v0.0.2"}},
		{cmd: "TIME", want: []string{"Time: 07:42:36"}},
		{cmd: "ECHO", args: []string{"a", "b"}, want: []string{"a b"}},
		{cmd: "ECHO", want: []string{""}},
		{cmd: "PI", want: []string{"Pi:", piDigits}},
		{cmd: "CLS", want: []string{`C:\>`}},
		{cmd: "HELP", want: append([]string{"Available commands:"}, Commands...)},
	}
	for _, tc := range tcs {
		s, disp, _ := newTestService(t)
		if err := s.Dispatch(context.Background(), tc.cmd, tc.args); err != nil {
			t.Fatalf("%s: %v", tc.cmd, err)
		}
		if strings.Join(disp.lines, "\n") != strings.Join(tc.want, "\n") {
			t.Fatalf("%s: lines=%q; want %q", tc.cmd, disp.lines, tc.want)
		}
	}
}

func TestClsClears(t *testing.T) {
	s, disp, _ := newTestService(t)
	disp.PrintLine("old")
	if err := s.Dispatch(context.Background(), "cls", nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if disp.clears != 1 || len(disp.lines) != 1 || disp.lines[0] != `C:\>` {
		t.Fatalf("clears=%d lines=%q", disp.clears, disp.lines)
	}
}

func TestGamesReturnsToPrompt(t *testing.T) {
	s, disp, in := newTestService(t, "GAMES", "3", "EXIT")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(in.lines) != 0 {
		t.Fatalf("unread=%q", in.lines)
	}
	want := []string{`C:\>`, `C:\>EXIT`, "shell halted."}
	if strings.Join(disp.lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("lines=%q; want %q", disp.lines, want)
	}
}

func TestRegistryCheck(t *testing.T) {
	run := func(context.Context, *Service, []string) error { return nil }

	r := newRegistry()
	if err := r.register(command{Name: "dir", Run: run}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.register(command{Name: "DIR", Run: run}); err == nil {
		t.Fatal("duplicate register succeeded")
	}
	if err := r.register(command{Name: "CD"}); err == nil {
		t.Fatal("register without handler succeeded")
	}
	if err := r.check([]string{"DIR", "CD"}); err == nil {
		t.Fatal("check passed with a missing handler")
	}
	if err := r.register(command{Name: "XYZZY", Run: run}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.check([]string{"DIR"}); err == nil {
		t.Fatal("check passed with an undeclared command")
	}
	if _, ok := r.resolve(" Dir "); !ok {
		t.Fatal("resolve is case sensitive")
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := New(Config{Display: &recDisplay{}, Input: &script{}}); err == nil {
		t.Fatal("New without tree succeeded")
	}
	if _, err := New(Config{Tree: fstree.Default(), Input: &script{}}); err == nil {
		t.Fatal("New without display succeeded")
	}
	if _, err := New(Config{Tree: fstree.Default(), Display: &recDisplay{}}); err == nil {
		t.Fatal("New without input succeeded")
	}
}

func TestDirRowsFitConsole(t *testing.T) {
	fb := hal.NewFramebuffer(hal.OLEDWidth, hal.OLEDHeight, nil)
	con := console.New(hal.NewSurface(fb), nil)
	tree := fstree.Default()

	for _, dir := range []string{`C:\`, `C:\GAMES`, `C:\BIN`, `D:\`} {
		s, err := New(Config{Tree: tree, Display: con, Input: &script{}})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		s.cwd = dir
		con.Clear()
		if err := s.Dispatch(context.Background(), "DIR", nil); err != nil {
			t.Fatalf("DIR %s: %v", dir, err)
		}

		entries, _ := tree.List(dir)
		rows := con.Lines()
		if want := min(len(entries)+1, console.Rows); len(rows) != want {
			t.Fatalf("DIR %s rows=%q; want %d rows, one per entry", dir, rows, want)
		}
		for _, r := range rows {
			if len([]rune(r)) > console.Columns {
				t.Fatalf("DIR %s row %q wider than %d", dir, r, console.Columns)
			}
		}
		last := entries[len(entries)-1]
		if got := rows[len(rows)-1]; !strings.HasPrefix(got, last.Name) || !strings.HasSuffix(got, last.Size) {
			t.Fatalf("DIR %s last row=%q; want entry %s %s", dir, got, last.Name, last.Size)
		}
	}
}
