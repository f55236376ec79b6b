// Package cli exposes the validation engine as a command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
	"constraintsvc/internal/core/ports"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/version"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrValidationFailed is returned by check when the attributes produced at
// least one message.
var ErrValidationFailed = errors.New("validation failed")

// ConstraintChecker rejects documents that reference unknown validators.
type ConstraintChecker interface {
	CheckConstraints(constraints validation.Constraints) error
}

type Dependencies struct {
	Engine  *validation.Engine
	Decoder ports.DocumentDecoder
	Checker ConstraintChecker
	Logger  logger.Logger
	Stdin   io.Reader
	Stdout  io.Writer
	Build   version.BuildInfo
}

func NewApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Usage:   "Validate attribute documents against constraint documents",
		Version: deps.Build.String(),
		Writer:  deps.Stdout,
		Commands: []*cli.Command{
			checkCommand(deps),
			validatorsCommand(deps),
			versionCommand(deps),
		},
	}
}

func checkCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate an attributes file against a constraints file",
		Description: `Both files may be YAML or JSON. Pass "-" as --input to read attributes
from stdin. The command fails when any message is produced.

  validate check --constraints user.yaml --input user.json --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "constraints",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Path to the constraint document",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "Path to the attributes document, - for stdin",
			},
			&cli.BoolFlag{
				Name:  "flatten",
				Usage: "Print a flat list of messages",
			},
			&cli.BoolFlag{
				Name:  "full-messages",
				Value: true,
				Usage: "Prefix messages with the humanized attribute name",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   FormatText,
				Usage:   "Output format: text or json",
				Validator: func(v string) error {
					if v != FormatText && v != FormatJSON {
						return fmt.Errorf("unknown output format %q", v)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("constraints")
			log := deps.Logger.With(logger.String("constraints", path))

			doc, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read constraints: %w", err)
			}
			constraints, err := deps.Decoder.Decode(doc)
			if err != nil {
				return err
			}
			if err := deps.Checker.CheckConstraints(constraints); err != nil {
				return err
			}

			attrs, err := readAttributes(cmd.String("input"), deps.Stdin)
			if err != nil {
				return err
			}

			opts := []validation.Option{validation.FullMessages(cmd.Bool("full-messages"))}
			if cmd.Bool("flatten") {
				opts = append(opts, validation.Flatten())
			}

			result, err := deps.Engine.Validate(attrs, constraints, opts...)
			if err != nil {
				return err
			}

			outcome := &schema.Outcome{
				SchemaID: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
				Valid:    result == nil,
				Errors:   result,
			}
			log.Debug("Validation finished", logger.Bool("valid", outcome.Valid))

			if err := render(deps.Stdout, cmd.String("format"), outcome); err != nil {
				return err
			}
			if !outcome.Valid {
				return ErrValidationFailed
			}
			return nil
		},
	}
}

func validatorsCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "validators",
		Usage: "List the registered validators",
		Action: func(_ context.Context, _ *cli.Command) error {
			for _, name := range deps.Engine.Registry().Names() {
				if _, err := fmt.Fprintln(deps.Stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func versionCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(_ context.Context, _ *cli.Command) error {
			_, err := fmt.Fprintln(deps.Stdout, deps.Build.String())
			return err
		},
	}
}

// readAttributes decodes a YAML or JSON object. JSON is a subset of YAML so
// one decoder serves both.
func readAttributes(path string, stdin io.Reader) (validation.Attributes, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read attributes: %w", err)
	}

	var attrs map[string]any
	if err := yaml.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return attrs, nil
}

func render(w io.Writer, format string, outcome *schema.Outcome) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	if outcome.Valid {
		_, err := fmt.Fprintln(w, "valid")
		return err
	}

	var b strings.Builder
	switch result := outcome.Errors.(type) {
	case validation.Flat:
		for _, msg := range result {
			fmt.Fprintf(&b, "%s\n", msg)
		}
	case *validation.Grouped:
		result.Each(func(attribute string, messages []string) {
			for _, msg := range messages {
				fmt.Fprintf(&b, "%s: %s\n", attribute, msg)
			}
		})
	}
	_, err := io.WriteString(w, b.String())
	return err
}
