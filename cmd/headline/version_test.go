package main

import (
	"bytes"
	"strings"
	"testing"

	"headline/internal/version"
)

func TestVersionCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	versionCmd.SetOut(buf)
	defer versionCmd.SetOut(nil)

	runVersion(versionCmd, nil)

	out := buf.String()
	if !strings.Contains(out, "headline version "+version.Version) {
		t.Errorf("version output = %q, should contain version line", out)
	}
	if !strings.Contains(out, "Commit:") {
		t.Errorf("version output = %q, should contain commit line", out)
	}
	if !strings.Contains(out, "Built:") {
		t.Errorf("version output = %q, should contain build date line", out)
	}
}
