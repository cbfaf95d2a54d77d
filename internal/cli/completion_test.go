package cli

import (
	"strings"
	"testing"
)

func TestRun_Completion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"_polyroot_completions()", "complete -F _polyroot_completions polyroot", "check completion config help version", "relative absolute"}},
		{"zsh", []string{"#compdef polyroot", "'check:Run reference test suites'", "compdef _polyroot polyroot", "(text json yaml)"}},
		{"fish", []string{"complete -c polyroot -f", "-a 'config' -d 'Configuration utilities'", "-l tolerance-mode -x -a 'relative absolute'"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			stdout, _, code := runCLI("completion", tt.shell)
			if code != 0 {
				t.Fatalf("Run(completion %s) = %d, want 0", tt.shell, code)
			}
			for _, want := range tt.want {
				if !strings.Contains(stdout, want) {
					t.Errorf("completion %s missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestRun_CompletionAlias(t *testing.T) {
	t.Parallel()

	stdout, _, code := runCLI("completion", "bash", "--alias=poly-root")
	if code != 0 {
		t.Fatalf("Run(completion --alias) = %d, want 0", code)
	}
	if !strings.Contains(stdout, "complete -F _poly_root_completions poly-root") {
		t.Errorf("bash completion does not register alias:\n%s", stdout)
	}
}

func TestRun_CompletionErrors(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"completion"},
		{"completion", "powershell"},
		{"completion", "bash", "zsh"},
		{"completion", "bash", "--alias"},
		{"completion", "bash", "--force"},
	}

	for _, args := range tests {
		_, _, code := runCLI(args...)
		if code != 2 {
			t.Errorf("Run(%v) = %d, want 2", args, code)
		}
	}
}

func TestBuiltinCommands_Sorted(t *testing.T) {
	t.Parallel()

	cmds := builtinCommands()
	if len(cmds) != len(commandDescriptions) {
		t.Fatalf("builtinCommands() returned %d commands, want %d", len(cmds), len(commandDescriptions))
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1] >= cmds[i] {
			t.Errorf("builtinCommands() not sorted: %v", cmds)
		}
	}
}
