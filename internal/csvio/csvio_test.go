package csvio

import (
	"io"
	"strings"
	"testing"
)

func mustOpen(t *testing.T, content string) *Reader {
	t.Helper()
	r, err := Open(strings.NewReader(content))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return r
}

func TestOpen_Headers(t *testing.T) {
	r := mustOpen(t, "A,B,C\n1,2,3\n")
	if got := r.Headers(); len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Fatalf("headers: %v", got)
	}
	if !r.ContainsHeader("B") {
		t.Error("B should be present")
	}
	if r.ContainsHeader("b") {
		t.Error("header lookup is case-sensitive")
	}
	if r.ContainsHeader("D") {
		t.Error("D should be absent")
	}
}

func TestOpen_Empty(t *testing.T) {
	if _, err := Open(strings.NewReader("")); err == nil {
		t.Fatal("want error for empty source")
	}
}

func TestOpen_StripsBOM(t *testing.T) {
	r := mustOpen(t, "\uFEFFA,B\n1,2\n")
	if !r.ContainsHeader("A") {
		t.Fatalf("BOM not stripped: headers %v", r.Headers())
	}
}

func TestOpen_UTF16BOM(t *testing.T) {
	// "A,B\n1,2\n" encoded as UTF-16LE with BOM
	text := "A,B\n1,2\n"
	buf := []byte{0xFF, 0xFE}
	for _, c := range text {
		buf = append(buf, byte(c), 0x00)
	}
	r, err := Open(strings.NewReader(string(buf)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !r.ContainsHeader("A") || !r.ContainsHeader("B") {
		t.Fatalf("headers: %v", r.Headers())
	}
	row, err := r.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v, _ := row.GetField("B"); v != "2" {
		t.Errorf("field B: %q", v)
	}
}

func TestRow_Lookups(t *testing.T) {
	r := mustOpen(t, "A,B,C\nx, y ,\n")
	row, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}

	// GetField: header-absent is an error, present-but-empty is not
	if _, err := row.GetField("Z"); err == nil {
		t.Error("want error for absent header")
	}
	if v, err := row.GetField("C"); err != nil || v != "" {
		t.Errorf("empty cell: v=%q err=%v", v, err)
	}

	// FindField trims and reports presence of a non-empty value
	if v, ok := row.FindField("B"); !ok || v != "y" {
		t.Errorf("FindField B: %q %v", v, ok)
	}
	if _, ok := row.FindField("C"); ok {
		t.Error("empty cell should report not found")
	}
	if _, ok := row.FindField("Z"); ok {
		t.Error("absent header should report not found")
	}
}

func TestRow_LineNumbers(t *testing.T) {
	r := mustOpen(t, "A\nfirst\nsecond\n")
	row1, _ := r.Read()
	row2, _ := r.Read()
	if row1.LineNumber() != 2 || row2.LineNumber() != 3 {
		t.Errorf("lines: %d, %d (header is line 1)", row1.LineNumber(), row2.LineNumber())
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("want EOF, got %v", err)
	}
}

func TestRow_LineNumbers_QuotedNewlines(t *testing.T) {
	// first data row spans physical lines 2-3 via a quoted newline
	r := mustOpen(t, "A,B\n\"x\ny\",1\nq,2\n")
	row1, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	row2, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if row1.LineNumber() != 2 {
		t.Errorf("multi-line row: want line 2, got %d", row1.LineNumber())
	}
	if row2.LineNumber() != 4 {
		t.Errorf("row after multi-line row: want line 4, got %d", row2.LineNumber())
	}
	if v, _ := row1.GetField("A"); v != "x\ny" {
		t.Errorf("embedded newline field: %q", v)
	}
}

func TestRow_ShortRecord(t *testing.T) {
	r := mustOpen(t, "A,B,C\nonly\n")
	row, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if v, err := row.GetField("C"); err != nil || v != "" {
		t.Errorf("short record field: v=%q err=%v", v, err)
	}
}
