package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/picklist/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "picklist config validate [options]",
				Description: "Validates the configuration file, checking the orders pattern, theme and key bindings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResult struct {
	Valid  bool              `json:"valid"`
	Errors []validationError `json:"errors,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	result := validate(cmd.flags)

	out := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteIndented(out, result); err != nil {
			return err
		}
	} else {
		p := printer{w: out}
		for _, e := range result.Errors {
			if e.Field != "" {
				p.Errorf("%s: %s", e.Field, e.Message)
			} else {
				p.Errorf("%s", e.Message)
			}
		}
		if result.Valid {
			p.Successf("config ok")
		} else {
			p.Printf("")
			p.Errorf("%d error(s) found", len(result.Errors))
		}
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func validate(flags *Flags) validationResult {
	err := flags.Config.ValidateDeep(flags.ConfigPath)
	if err == nil {
		return validationResult{Valid: true}
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return validationResult{Errors: []validationError{{Message: err.Error()}}}
	}

	res := validationResult{}
	for _, fe := range fieldErrs {
		res.Errors = append(res.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return res
}
