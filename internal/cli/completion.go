package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/polyroot/internal/config"
	"github.com/AndreyAkinshin/polyroot/internal/errors"
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// cmdCompletion generates shell completion scripts.
func (a *app) cmdCompletion(args []string) error {
	shell := ""
	alias := ""

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case arg == "--alias":
			return errors.Usage("completion: --alias requires a value (--alias=<name>)")
		case strings.HasPrefix(arg, "-"):
			return errors.Usagef("completion: unknown flag: %s", arg)
		default:
			if shell != "" {
				return errors.Usagef("completion: unexpected argument: %s", arg)
			}
			shell = arg
		}
	}

	if shell == "" {
		return errors.Usage("completion: shell required (bash, zsh, fish)")
	}

	cmdName := "polyroot"
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		a.out.Print("%s", generateBashCompletion(cmdName))
	case "zsh":
		a.out.Print("%s", generateZshCompletion(cmdName))
	case "fish":
		a.out.Print("%s", generateFishCompletion(cmdName))
	default:
		return errors.Usagef("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
	}

	return nil
}

// printCompletionUsage prints the help text for the completion command.
func (a *app) printCompletionUsage() {
	w := a.out

	w.HelpTitle("polyroot completion - generate shell completion scripts")

	w.HelpSection("Usage:")
	w.HelpUsage("polyroot completion <shell> [--alias=<name>]")

	w.HelpSection("Arguments:")
	w.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", 10)

	w.HelpSection("Options:")
	w.HelpFlag("--alias=<name>", "Generate completion for command alias", 14)
	w.HelpFlag("-h, --help", "Show this help", 14)

	w.HelpSection("Examples:")
	w.HelpExample("polyroot completion bash", "Generate bash completion")
	w.HelpExample("polyroot completion zsh", "Generate zsh completion")
	w.HelpExample("polyroot completion fish", "Generate fish completion")
	w.HelpExample("polyroot completion bash --alias=pr", "Generate bash completion for alias 'pr'")

	w.HelpSection("Installation:")
	w.Println("  Bash:  eval \"$(polyroot completion bash)\"")
	w.Println("  Zsh:   eval \"$(polyroot completion zsh)\"")
	w.Println("  Fish:  polyroot completion fish | source")
	w.Println("")
}

// commandDescriptions maps built-in commands to their help text.
var commandDescriptions = map[string]string{
	"check":      "Run reference test suites",
	"config":     "Configuration utilities",
	"completion": "Generate shell completion",
	"version":    "Show version information",
	"help":       "Show help",
}

// builtinCommands returns the built-in CLI commands in sorted order.
func builtinCommands() []string {
	cmds := make([]string, 0, len(commandDescriptions))
	for cmd := range commandDescriptions {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// globalFlags returns the global CLI flags.
func globalFlags() []string {
	flags := []string{"--quiet", "--verbose", "--help", "--version"}
	return append(flags, valueFlags...)
}

func generateBashCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	return fmt.Sprintf(`# polyroot bash completion
# Add to ~/.bashrc: eval "$(polyroot completion bash)"

%s() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s"

    case "${prev}" in
        config)
            COMPREPLY=($(compgen -W "validate show" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
        check|--config)
            _filedir
            return
            ;;
        --format)
            COMPREPLY=($(compgen -W "%s" -- "${cur}"))
            return
            ;;
        --tolerance-mode)
            COMPREPLY=($(compgen -W "%s" -- "${cur}"))
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return
    fi

    if [[ ${cword} -eq 1 ]]; then
        COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
    fi
}

complete -F %s %s
`, funcName, strings.Join(builtinCommands(), " "), strings.Join(globalFlags(), " "),
		strings.Join(config.ValidFormats(), " "), strings.Join(complexnum.ValidToleranceModes(), " "),
		funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var commands strings.Builder
	for _, cmd := range builtinCommands() {
		fmt.Fprintf(&commands, "        '%s:%s'\n", cmd, commandDescriptions[cmd])
	}

	return fmt.Sprintf(`#compdef %s
# polyroot zsh completion
# Add to ~/.zshrc: eval "$(polyroot completion zsh)"

%s() {
    local -a commands flags

    commands=(
%s    )

    flags=(
        '(-q --quiet)'{-q,--quiet}'[Minimal output]'
        '(-v --verbose)'{-v,--verbose}'[Debug diagnostics]'
        '--config=[Configuration file]:file:_files'
        '--format=[Output format]:format:(%s)'
        '--tolerance=[Root comparison tolerance]:value:'
        '--tolerance-mode=[Tolerance mode]:mode:(%s)'
        '--precision=[Fractional digits]:digits:'
        '--seed=[Random seed]:seed:'
        '--help[Show help]'
        '--version[Show version]'
    )

    if (( CURRENT == 2 )); then
        _describe -t commands 'command' commands
        _arguments -s $flags[@]
        return
    fi

    case "${words[2]}" in
        config)
            _values 'config subcommand' 'validate[Validate configuration]' 'show[Show effective configuration]'
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
        check)
            _files -/
            ;;
        *)
            _arguments -s $flags[@]
            ;;
    esac
}

compdef %s %s
`, cmdName, funcName, commands.String(),
		strings.Join(config.ValidFormats(), " "), strings.Join(complexnum.ValidToleranceModes(), " "),
		funcName, cmdName)
}

func generateFishCompletion(cmdName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`# polyroot fish completion
# Add to config: polyroot completion fish | source

complete -c %s -f

`, cmdName))

	for _, cmd := range builtinCommands() {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmdName, cmd, commandDescriptions[cmd]))
	}

	sb.WriteString("\n# Global flags\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -s q -l quiet -d 'Minimal output'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -s v -l verbose -d 'Debug diagnostics'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l config -r -F -d 'Configuration file'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l format -x -a '%s' -d 'Output format'\n", cmdName, strings.Join(config.ValidFormats(), " ")))
	sb.WriteString(fmt.Sprintf("complete -c %s -l tolerance -x -d 'Root comparison tolerance'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l tolerance-mode -x -a '%s' -d 'Tolerance mode'\n", cmdName, strings.Join(complexnum.ValidToleranceModes(), " ")))
	sb.WriteString(fmt.Sprintf("complete -c %s -l precision -x -d 'Fractional digits'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l seed -x -d 'Random seed'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l help -d 'Show help'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l version -d 'Show version'\n", cmdName))

	sb.WriteString("\n# config subcommands\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from config' -a 'validate' -d 'Validate configuration'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from config' -a 'show' -d 'Show effective configuration'\n", cmdName))

	sb.WriteString("\n# completion subcommands\n")
	for _, shell := range []string{"bash", "zsh", "fish"} {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from completion' -a '%s' -d 'Generate %s completion'\n", cmdName, shell, shell))
	}

	sb.WriteString("\n# check takes a directory\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from check' -a '(__fish_complete_directories)'\n", cmdName))

	return sb.String()
}
