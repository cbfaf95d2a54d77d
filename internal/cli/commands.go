package cli

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/polyroot/internal/config"
	"github.com/AndreyAkinshin/polyroot/internal/errors"
	"github.com/AndreyAkinshin/polyroot/internal/output"
)

// cmdConfig handles configuration utilities.
func (a *app) cmdConfig(args []string) error {
	if len(args) == 0 {
		return errors.Usage("config: subcommand required (validate, show)")
	}

	switch args[0] {
	case "validate":
		return a.cmdConfigValidate()
	case "show":
		return a.cmdConfigShow()
	default:
		return errors.Usagef("config: unknown subcommand %q", args[0])
	}
}

func (a *app) cmdConfigValidate() error {
	s, err := a.loadSettings()
	if err != nil {
		return err
	}

	if s.Path == "" {
		a.out.ValidationSuccess("No %s found; built-in defaults are valid.", config.DefaultFileName)
	} else {
		a.out.ValidationSuccess("Configuration is valid.")
		a.out.SummaryItem("File", s.Path)
	}

	cfg := s.Config
	a.out.SummaryItem("Tolerance", cfg.ToleranceValue().String())
	a.out.SummaryItem("Output", fmt.Sprintf("%s (precision %d)", cfg.Output.Format, *cfg.Output.Precision))
	a.out.SummaryItem("Tests", fmt.Sprintf("%s/<suite>/%s", cfg.Tests.Directory, cfg.Tests.Pattern))
	return nil
}

// cmdConfigShow prints the effective configuration. Text format renders YAML
// since that is the configuration file syntax.
func (a *app) cmdConfigShow() error {
	s, err := a.loadSettings()
	if err != nil {
		return err
	}

	if s.Config.Output.Format == output.FormatJSON {
		err = a.out.JSON(s.Config)
	} else {
		err = a.out.YAML(s.Config)
	}
	if err != nil {
		return errors.Wrap(err, "cannot render configuration")
	}
	return nil
}

// printConfigUsage prints the help text for the config command.
func (a *app) printConfigUsage() {
	w := a.out

	w.HelpTitle("polyroot config - configuration utilities")

	w.HelpSection("Usage:")
	w.HelpUsage("polyroot config <subcommand>")

	w.HelpSection("Subcommands:")
	w.HelpCommand("validate", "Validate the configuration file", helpFlagWidthShort)
	w.HelpCommand("show", "Print the effective configuration", helpFlagWidthShort)

	w.HelpSection("Options:")
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthShort)

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, sub := range []string{"validate", "show"} {
		w.HelpExample(fmt.Sprintf("polyroot config %s", sub), fmt.Sprintf("%s the effective configuration", titleCase.String(sub)))
	}
	w.HelpExample("polyroot --config=ci.yaml config show --format=json", "Show a specific file as JSON")
	w.Println("")
}
