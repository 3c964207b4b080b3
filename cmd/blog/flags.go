package main

import (
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/app"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli/v3"
)

func databaseFlags(tomlSrc altsrc.Sourcer) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db-driver",
			Usage:   "Database driver: sqlite, postgres",
			Sources: sources("DB_DRIVER", "database.driver", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "database-file",
			Usage:   "SQLite database path",
			Sources: sources("DATABASE_FILE", "database.file", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "database-url",
			Usage:   "Postgres connection URL",
			Sources: sources("DATABASE_URL", "database.url", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			Sources: sources("LOG_LEVEL", "log.level", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format: json, text, pretty",
			Sources: sources("LOG_FORMAT", "log.format", tomlSrc),
		},
	}
}

func serveFlags(tomlSrc altsrc.Sourcer) []cli.Flag {
	return append(databaseFlags(tomlSrc),
		&cli.IntFlag{
			Name:    "port",
			Usage:   "Server port",
			Sources: sources("PORT", "server.port", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "env",
			Usage:   "Environment: dev, staging, prod",
			Sources: sources("ENV", "server.env", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "app-domain",
			Usage:   "Public URL used in password reset links",
			Sources: sources("APP_DOMAIN", "server.app_domain", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "static-dir",
			Usage:   "Directory of the single page client",
			Sources: sources("STATIC_DIR", "server.static_dir", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "jwt-secret",
			Usage:   "HS256 secret for session tokens",
			Sources: sources("JWT_SECRET", "auth.jwt_secret", tomlSrc),
		},
		&cli.DurationFlag{
			Name:    "reset-token-ttl",
			Usage:   "Expire pending password resets after this long (0 keeps them)",
			Sources: sources("RESET_TOKEN_TTL", "auth.reset_token_ttl", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "smtp-host",
			Usage:   "SMTP relay host; emails are logged when unset",
			Sources: sources("SMTP_HOST", "mail.smtp_host", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "mail-from",
			Usage:   "Sender address for outgoing email",
			Sources: sources("MAIL_FROM", "mail.from", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "Bucket for uploaded images; uploads are disabled when unset",
			Sources: sources("S3_BUCKET", "storage.bucket", tomlSrc),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "S3-compatible endpoint URL",
			Sources: sources("S3_ENDPOINT", "storage.endpoint", tomlSrc),
		},
		&cli.DurationFlag{
			Name:    "shutdown-grace-period",
			Value:   10 * time.Second,
			Usage:   "Time allowed for in-flight requests on shutdown",
			Sources: sources("SHUTDOWN_GRACE_PERIOD", "server.shutdown_grace_period", tomlSrc),
		},
	)
}

// configFromCLI starts from the environment and applies any flag that was
// set on the command line or in the TOML file.
func configFromCLI(cmd *cli.Command) app.Config {
	cfg := app.LoadConfig()

	setString := func(name string, dst *string) {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	setDuration := func(name string, dst *time.Duration) {
		if cmd.IsSet(name) {
			*dst = cmd.Duration(name)
		}
	}

	setString("db-driver", &cfg.DBDriver)
	setString("database-file", &cfg.DatabaseFile)
	setString("database-url", &cfg.DatabaseURL)
	setString("log-level", &cfg.LogLevel)
	setString("log-format", &cfg.LogFormat)
	setString("env", &cfg.Env)
	setString("app-domain", &cfg.AppDomain)
	setString("static-dir", &cfg.StaticDir)
	setString("jwt-secret", &cfg.JWTSecret)
	setString("smtp-host", &cfg.SMTP.Host)
	setString("mail-from", &cfg.SMTP.From)
	setString("s3-bucket", &cfg.S3.Bucket)
	setString("s3-endpoint", &cfg.S3.Endpoint)
	setDuration("reset-token-ttl", &cfg.ResetTokenTTL)
	setDuration("shutdown-grace-period", &cfg.ShutdownGracePeriod)

	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}

	return cfg
}
