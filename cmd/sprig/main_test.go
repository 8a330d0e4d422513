package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in   string
		want uiMode
		err  bool
	}{
		{"", uiModeAuto, false},
		{" ON ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Fatalf("readUIMode(%q): want %q (err=%v), got %q (%v)", tt.in, tt.want, tt.err, got, err)
		}
	}
}

func TestRenderVersion(t *testing.T) {
	var buf bytes.Buffer
	renderVersionPretty(&buf, versionOptions{showHash: true}, false)
	if !strings.HasPrefix(buf.String(), "sprig ") || !strings.Contains(buf.String(), "commit:  unknown") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := renderVersionJSON(&buf, versionOptions{showDate: true}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "sprig" || payload.BuildDate != "unknown" || payload.GitCommit != "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
