package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aussiebroadwan/ngxblog/internal/blog/app"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// sources creates a value source chain combining env vars and TOML config
func sources(envKey, tomlKey string, tomlSrc altsrc.Sourcer) cli.ValueSourceChain {
	chain := cli.EnvVars(envKey)
	chain.Chain = append(chain.Chain, toml.TOML(tomlKey, tomlSrc))
	return chain
}

func main() {
	var configFile string
	tomlSrc := altsrc.NewStringPtrSourcer(&configFile)

	cmd := &cli.Command{
		Name:    "blog",
		Usage:   "Ngx Blog backend",
		Version: app.BuildVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "ngxblog.toml",
				Usage:       "Path to configuration file",
				Destination: &configFile,
				Sources:     cli.EnvVars("CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "serve",
				Usage:     "Run the HTTP server",
				ArgsUsage: "[port]",
				Flags:     serveFlags(tomlSrc),
				Action:    runServe,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations and exit",
				Flags:  databaseFlags(tomlSrc),
				Action: runMigrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg := configFromCLI(cmd)

	// A positional port wins over everything else.
	if arg := cmd.Args().First(); arg != "" {
		port, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", arg, err)
		}
		cfg.Port = port
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}

func runMigrate(ctx context.Context, cmd *cli.Command) error {
	return app.Migrate(configFromCLI(cmd))
}
