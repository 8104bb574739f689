package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"headline/internal/testutil"
)

func TestProcessLinesGolden(t *testing.T) {
	in, err := os.Open(filepath.Join("testdata", "titles.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	var out bytes.Buffer
	lines, err := processLines(in, &out, FormatHuman)
	if err != nil {
		t.Fatalf("processLines error: %v", err)
	}
	if lines != 10 {
		t.Errorf("lines = %d, want 10", lines)
	}

	testutil.CompareGolden(t, "titles.golden", out.Bytes())
}

func TestProcessLinesJSON(t *testing.T) {
	input := "the cat in the hat\n\nwar and peace\n"
	var out bytes.Buffer

	lines, err := processLines(strings.NewReader(input), &out, FormatJSON)
	if err != nil {
		t.Fatalf("processLines error: %v", err)
	}
	if lines != 3 {
		t.Errorf("lines = %d, want 3", lines)
	}

	want := `{"input":"the cat in the hat","title":"The Cat in the Hat"}` + "\n" +
		"\n" +
		`{"input":"war and peace","title":"War and Peace"}` + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestProcessLinesBlankOnly(t *testing.T) {
	var out bytes.Buffer
	lines, err := processLines(strings.NewReader("\n \t \n"), &out, FormatHuman)
	if err != nil {
		t.Fatalf("processLines error: %v", err)
	}
	if lines != 2 {
		t.Errorf("lines = %d, want 2", lines)
	}
	if out.String() != "\n\n" {
		t.Errorf("output = %q, want two blank lines", out.String())
	}
}

func TestProcessLinesEmptyInput(t *testing.T) {
	var out bytes.Buffer
	lines, err := processLines(strings.NewReader(""), &out, FormatHuman)
	if err != nil {
		t.Fatalf("processLines error: %v", err)
	}
	if lines != 0 {
		t.Errorf("lines = %d, want 0", lines)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}
