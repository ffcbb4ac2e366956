package terraformfmt_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/breml/tfhooks/internal/hooks/terraformfmt"
)

func TestParseCmdline(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want terraformfmt.Invocation
	}{
		{
			name: "nil argv",
			argv: nil,
			want: terraformfmt.Invocation{},
		},
		{
			name: "files only",
			argv: []string{"main.tf", "variables.tf"},
			want: terraformfmt.Invocation{
				Files: []string{"main.tf", "variables.tf"},
			},
		},
		{
			name: "args with equal sign",
			argv: []string{"--args=-recursive", "--args=-diff", "a.tf"},
			want: terraformfmt.Invocation{
				Args:  []string{"-recursive", "-diff"},
				Files: []string{"a.tf"},
			},
		},
		{
			name: "shorthand args with separate value",
			argv: []string{"-a", "-check", "a.tf"},
			want: terraformfmt.Invocation{
				Args:  []string{"-check"},
				Files: []string{"a.tf"},
			},
		},
		{
			name: "args containing commas are kept intact",
			argv: []string{"--args=-var=list=a,b,c"},
			want: terraformfmt.Invocation{
				Args: []string{"-var=list=a,b,c"},
			},
		},
		{
			name: "hook config entries keep their order",
			argv: []string{"--hook-config=--tf-path=/opt/tofu", "-h", "--no-color=true"},
			want: terraformfmt.Invocation{
				HookConfig: []string{"--tf-path=/opt/tofu", "--no-color=true"},
			},
		},
		{
			name: "init args and alias",
			argv: []string{"--tf-init-args=-upgrade", "-i", "-lockfile=readonly", "--init-args=-backend=false"},
			want: terraformfmt.Invocation{
				InitArgs: []string{"-upgrade", "-lockfile=readonly", "-backend=false"},
			},
		},
		{
			name: "env vars and alias",
			argv: []string{"--envs=TF_LOG=trace", "-e", `FOO="bar baz"`, "--env-vars=EMPTY="},
			want: terraformfmt.Invocation{
				EnvVars: map[string]string{
					"TF_LOG": "trace",
					"FOO":    "bar baz",
					"EMPTY":  "",
				},
			},
		},
		{
			name: "flags interspersed with files",
			argv: []string{"a.tf", "--args=-diff", "b.tf"},
			want: terraformfmt.Invocation{
				Args:  []string{"-diff"},
				Files: []string{"a.tf", "b.tf"},
			},
		},
		{
			name: "shorthand hook config with separate value",
			argv: []string{"-h", "--tf-path=/usr/local/bin/tofu", "a.tf"},
			want: terraformfmt.Invocation{
				HookConfig: []string{"--tf-path=/usr/local/bin/tofu"},
				Files:      []string{"a.tf"},
			},
		},
		{
			name: "file named completion",
			argv: []string{"completion"},
			want: terraformfmt.Invocation{
				Files: []string{"completion"},
			},
		},
		{
			name: "file named like the shell completion command",
			argv: []string{"--args=-diff", "__complete", "a.tf"},
			want: terraformfmt.Invocation{
				Args:  []string{"-diff"},
				Files: []string{"__complete", "a.tf"},
			},
		},
		{
			name: "double dash ends flag parsing",
			argv: []string{"--args=-diff", "--", "-odd-name.tf", "a.tf"},
			want: terraformfmt.Invocation{
				Args:  []string{"-diff"},
				Files: []string{"-odd-name.tf", "a.tf"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := terraformfmt.ParseCmdline(tt.argv, io.Discard)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseCmdline() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCmdline_Errors(t *testing.T) {
	tests := []struct {
		name        string
		argv        []string
		errIs       error
		errContains string
	}{
		{
			name:        "unknown flag",
			argv:        []string{"--recursive", "a.tf"},
			errContains: "unknown flag",
		},
		{
			name:        "missing flag value",
			argv:        []string{"--args"},
			errContains: "needs an argument",
		},
		{
			name:  "env entry without equal sign",
			argv:  []string{"--envs=TF_LOG"},
			errIs: terraformfmt.ErrInvalidEnvVar,
		},
		{
			name:  "env entry without key",
			argv:  []string{"--envs==value"},
			errIs: terraformfmt.ErrInvalidEnvVar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := terraformfmt.ParseCmdline(tt.argv, io.Discard)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !strings.Contains(err.Error(), "failed to parse arguments") {
				t.Errorf("expected error to be wrapped, got %q", err.Error())
			}

			if tt.errIs != nil && !errors.Is(err, tt.errIs) {
				t.Errorf("expected error to wrap %v, got %v", tt.errIs, err)
			}

			if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestParseCmdline_Help(t *testing.T) {
	var out bytes.Buffer

	_, err := terraformfmt.ParseCmdline([]string{"--help"}, &out)
	if !errors.Is(err, terraformfmt.ErrHandledForTesting) {
		t.Fatalf("expected handled error, got %v", err)
	}

	help := out.String()
	for _, want := range []string{"terraform-fmt", "--args", "-h, --hook-config", "--envs"} {
		if !strings.Contains(help, want) {
			t.Errorf("expected help to contain %q, got:\n%s", want, help)
		}
	}

	if strings.Contains(help, "--env-vars") {
		t.Errorf("expected hidden alias --env-vars to be omitted from help, got:\n%s", help)
	}
}

func TestParseCmdline_Version(t *testing.T) {
	var out bytes.Buffer

	_, err := terraformfmt.ParseCmdline([]string{"--version"}, &out)
	if !errors.Is(err, terraformfmt.ErrHandledForTesting) {
		t.Fatalf("expected handled error, got %v", err)
	}

	if !strings.Contains(out.String(), terraformfmt.Version) {
		t.Errorf("expected version output to contain %q, got %q", terraformfmt.Version, out.String())
	}
}
