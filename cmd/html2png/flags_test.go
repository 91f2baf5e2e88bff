package main

import (
	"testing"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantConfig     string
		wantOutput     string
		wantBrowserBin string
		wantTimeout    string
		wantWorkers    int
		wantWidth      int
		wantHeight     int
		wantOpaque     bool
		wantFullPage   bool
		wantQuiet      bool
		wantVerbose    bool
		wantPositional []string
		wantErr        bool
	}{
		{
			name:           "no args",
			args:           []string{},
			wantPositional: []string{},
		},
		{
			name:           "single file",
			args:           []string{"diagram.html"},
			wantPositional: []string{"diagram.html"},
		},
		{
			name:           "config flag",
			args:           []string{"--config", "work"},
			wantConfig:     "work",
			wantPositional: []string{},
		},
		{
			name:           "output flag short",
			args:           []string{"-o", "./out/"},
			wantOutput:     "./out/",
			wantPositional: []string{},
		},
		{
			name:           "browser bin flag",
			args:           []string{"--browser-bin", "/usr/bin/chromium"},
			wantBrowserBin: "/usr/bin/chromium",
			wantPositional: []string{},
		},
		{
			name:           "viewport flags",
			args:           []string{"--width", "1920", "--height", "1080"},
			wantWidth:      1920,
			wantHeight:     1080,
			wantPositional: []string{},
		},
		{
			name:           "capture toggles",
			args:           []string{"--opaque", "--full-page"},
			wantOpaque:     true,
			wantFullPage:   true,
			wantPositional: []string{},
		},
		{
			name:           "workers and timeout short",
			args:           []string{"-w", "4", "-t", "2m"},
			wantWorkers:    4,
			wantTimeout:    "2m",
			wantPositional: []string{},
		},
		{
			name:           "quiet and verbose short",
			args:           []string{"-q", "-v", "doc.html"},
			wantQuiet:      true,
			wantVerbose:    true,
			wantPositional: []string{"doc.html"},
		},
		{
			name:           "flags after positional argument",
			args:           []string{"doc.html", "-o", "./out/", "--verbose"},
			wantOutput:     "./out/",
			wantVerbose:    true,
			wantPositional: []string{"doc.html"},
		},
		{
			name:    "unknown flag returns error",
			args:    []string{"--unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseConvertFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConvertFlags() error = %v", err)
			}

			if flags.common.config != tt.wantConfig {
				t.Errorf("config = %q, want %q", flags.common.config, tt.wantConfig)
			}
			if flags.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.browserBin != tt.wantBrowserBin {
				t.Errorf("browserBin = %q, want %q", flags.browserBin, tt.wantBrowserBin)
			}
			if flags.timeout != tt.wantTimeout {
				t.Errorf("timeout = %q, want %q", flags.timeout, tt.wantTimeout)
			}
			if flags.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", flags.workers, tt.wantWorkers)
			}
			if flags.render.width != tt.wantWidth {
				t.Errorf("width = %d, want %d", flags.render.width, tt.wantWidth)
			}
			if flags.render.height != tt.wantHeight {
				t.Errorf("height = %d, want %d", flags.render.height, tt.wantHeight)
			}
			if flags.render.opaque != tt.wantOpaque {
				t.Errorf("opaque = %v, want %v", flags.render.opaque, tt.wantOpaque)
			}
			if flags.render.fullPage != tt.wantFullPage {
				t.Errorf("fullPage = %v, want %v", flags.render.fullPage, tt.wantFullPage)
			}
			if flags.common.quiet != tt.wantQuiet {
				t.Errorf("quiet = %v, want %v", flags.common.quiet, tt.wantQuiet)
			}
			if flags.common.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", flags.common.verbose, tt.wantVerbose)
			}
			if len(positional) != len(tt.wantPositional) {
				t.Fatalf("positional = %v, want %v", positional, tt.wantPositional)
			}
			for i := range positional {
				if positional[i] != tt.wantPositional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.wantPositional[i])
				}
			}
		})
	}
}
