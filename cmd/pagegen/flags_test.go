package main

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantArgs []string
		check    func(t *testing.T, f *renderFlags)
	}{
		{
			name:     "positional input only",
			args:     []string{"post.md"},
			wantArgs: []string{"post.md"},
		},
		{
			name:     "output and layout flags",
			args:     []string{"-o", "public/", "-l", "minimal", "post.md"},
			wantArgs: []string{"post.md"},
			check: func(t *testing.T, f *renderFlags) {
				if f.output != "public/" {
					t.Errorf("output = %q, want %q", f.output, "public/")
				}
				if f.layout != "minimal" {
					t.Errorf("layout = %q, want %q", f.layout, "minimal")
				}
			},
		},
		{
			name:     "long flags",
			args:     []string{"--layouts-dir", "_layouts", "--highlight", "post.md"},
			wantArgs: []string{"post.md"},
			check: func(t *testing.T, f *renderFlags) {
				if f.layoutsDir != "_layouts" {
					t.Errorf("layoutsDir = %q, want %q", f.layoutsDir, "_layouts")
				}
				if !f.highlight {
					t.Error("highlight = false, want true")
				}
			},
		},
		{
			name:     "quiet and verbose shorthands",
			args:     []string{"-q", "-v", "post.md"},
			wantArgs: []string{"post.md"},
			check: func(t *testing.T, f *renderFlags) {
				if !f.quiet || !f.verbose {
					t.Errorf("quiet=%v verbose=%v, want both true", f.quiet, f.verbose)
				}
			},
		},
		{
			name:    "unknown flag fails",
			args:    []string{"--nope", "post.md"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, args, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}
