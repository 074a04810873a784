package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"
	"github.com/kamlesh-microsoft/clear-hl7-net-sub002/config"
	"github.com/kamlesh-microsoft/clear-hl7-net-sub002/v251"
)

func main() {
	logger := &log.Logger{
		Level:  log.InfoLevel,
		Writer: log.IOWriter{Writer: os.Stderr},
	}
	app := &cli.App{
		Name:  "hl7codec",
		Usage: "Parse, re-format and query HL7 v2 ER7 messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML codec configuration",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail on malformed numeric and date values",
			},
			&cli.StringFlag{
				Name:  "version",
				Usage: "Force the HL7 version instead of reading MSH-12",
			},
			&cli.BoolFlag{
				Name:  "generic",
				Usage: "Accept unknown segments as generic segments",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log parsing details to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				logger.Level = log.DebugLevel
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Print messages as JSON",
				ArgsUsage: "[file...]",
				Action: func(c *cli.Context) error {
					msgs, err := readMessages(c, logger, c.Args().Slice())
					if err != nil {
						return err
					}
					data, err := json.MarshalIndent(msgs, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, string(data))
					return nil
				},
			},
			{
				Name:      "format",
				Usage:     "Re-encode messages, one segment per line",
				ArgsUsage: "[file...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "cr",
						Usage: "Terminate segments with a carriage return instead of a line feed",
					},
				},
				Action: func(c *cli.Context) error {
					msgs, err := readMessages(c, logger, c.Args().Slice())
					if err != nil {
						return err
					}
					term := "\n"
					if c.Bool("cr") {
						term = "\r"
					}
					for _, m := range msgs {
						sep := m.Separators
						sep.LineTerminator = term
						if err := hl7.NewEncoder(c.App.Writer, hl7.WithSeparators(sep)).Encode(m); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:      "find",
				Usage:     "Print the values at a location such as PID.5.1",
				ArgsUsage: "<location> [file...]",
				Action: func(c *cli.Context) error {
					loc := c.Args().First()
					if loc == "" {
						return cli.Exit("a location is required", 2)
					}
					msgs, err := readMessages(c, logger, c.Args().Tail())
					if err != nil {
						return err
					}
					for _, m := range msgs {
						vals, err := m.FindAll(loc)
						if err != nil {
							logger.Warn().Str("location", loc).Err(err).Msg("no value")
							continue
						}
						fmt.Fprintln(c.App.Writer, strings.Join(vals, "\t"))
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("hl7codec failed")
	}
}

// readMessages parses every message of the named files, or of stdin when
// none are given
func readMessages(c *cli.Context, logger *log.Logger, files []string) ([]*hl7.Message, error) {
	reg, opts, err := setup(c, logger)
	if err != nil {
		return nil, err
	}

	var readers []io.Reader
	if len(files) == 0 {
		readers = append(readers, os.Stdin)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		readers = append(readers, f)
	}

	var out []*hl7.Message
	for _, r := range readers {
		msgs, err := hl7.NewDecoder(r, reg, opts...).Messages()
		if err != nil {
			return nil, err
		}
		out = append(out, msgs...)
	}
	logger.Debug().Int("messages", len(out)).Int("files", len(files)).Msg("parsed input")
	return out, nil
}

func setup(c *cli.Context, logger *log.Logger) (*hl7.Registry, []hl7.Option, error) {
	reg := v251.Registry()
	var opts []hl7.Option
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		if err := cfg.Apply(reg); err != nil {
			return nil, nil, err
		}
		opts = append(opts, cfg.Options()...)
		logger.Debug().Str("config", path).Int("segments", len(cfg.Segments)).Msg("loaded configuration")
	}
	if c.IsSet("strict") {
		opts = append(opts, hl7.WithStrict(c.Bool("strict")))
	}
	if c.IsSet("generic") {
		opts = append(opts, hl7.WithGenericSegments(c.Bool("generic")))
	}
	if v := c.String("version"); v != "" {
		opts = append(opts, hl7.WithVersion(v))
	}
	return reg, append(opts, hl7.WithLogger(logger)), nil
}
