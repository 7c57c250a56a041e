package console

import (
	"fmt"
	"strings"
	"testing"

	"sdos/hal"
)

func newTestConsole(echo *strings.Builder) (*Console, hal.Framebuffer, *int) {
	presents := 0
	fb := hal.NewFramebuffer(hal.OLEDWidth, hal.OLEDHeight, func([]byte) error {
		presents++
		return nil
	})
	if echo == nil {
		return New(hal.NewSurface(fb), nil), fb, &presents
	}
	return New(hal.NewSurface(fb), echo), fb, &presents
}

func TestPrintLineWrapsLongText(t *testing.T) {
	c, _, _ := newTestConsole(nil)
	text := strings.Repeat("a", 21) + strings.Repeat("b", 21) + "ccc"

	c.PrintLine(text)

	got := c.Lines()
	want := []string{strings.Repeat("a", 21), strings.Repeat("b", 21), "ccc"}
	if len(got) != len(want) {
		t.Fatalf("Lines()=%q; want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lines()[%d]=%q; want %q", i, got[i], want[i])
		}
	}
}

func TestPrintLineKeepsLastRows(t *testing.T) {
	c, _, _ := newTestConsole(nil)
	for i := 1; i <= 9; i++ {
		c.PrintLine(fmt.Sprintf("line %d", i))
	}

	got := c.Lines()
	if len(got) != Rows {
		t.Fatalf("len(Lines())=%d; want %d", len(got), Rows)
	}
	if got[0] != "line 2" || got[Rows-1] != "line 9" {
		t.Fatalf("Lines()=%q; want line 2 .. line 9", got)
	}
}

func TestPrintLineDrawsAndPresents(t *testing.T) {
	c, fb, presents := newTestConsole(nil)

	c.PrintLine("")
	if got := c.Lines(); len(got) != 1 || got[0] != "" {
		t.Fatalf("Lines()=%q; want one empty row", got)
	}
	if *presents != 1 {
		t.Fatalf("presents=%d; want 1", *presents)
	}

	c.PrintLine("C:\\>")
	if !anyLit(fb.Buffer()) {
		t.Fatal("expected glyph pixels after PrintLine")
	}

	c.Clear()
	if len(c.Lines()) != 0 {
		t.Fatalf("Lines()=%q after Clear; want none", c.Lines())
	}
	if anyLit(fb.Buffer()) {
		t.Fatal("expected blank surface after Clear")
	}
	if *presents != 3 {
		t.Fatalf("presents=%d; want 3", *presents)
	}
}

func TestPrintLineEcho(t *testing.T) {
	var echo strings.Builder
	c, _, _ := newTestConsole(&echo)

	c.PrintLine(strings.Repeat("x", 25))
	c.PrintLine("ok")

	want := strings.Repeat("x", 21) + "\nxxxx\nok\n"
	if echo.String() != want {
		t.Fatalf("echo=%q; want %q", echo.String(), want)
	}
}

func TestWrap(t *testing.T) {
	tcs := []struct {
		in   string
		rows int
	}{
		{in: "", rows: 1},
		{in: strings.Repeat("x", 21), rows: 1},
		{in: strings.Repeat("x", 22), rows: 2},
		{in: strings.Repeat("é", 42), rows: 2},
	}
	for _, tc := range tcs {
		if got := Wrap(tc.in); len(got) != tc.rows {
			t.Fatalf("Wrap(%q) rows=%d; want %d", tc.in, len(got), tc.rows)
		}
	}
}

func anyLit(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return true
		}
	}
	return false
}
