package config

import (
	"github.com/urfave/cli"
)

// Flags returns the command-line flags of the server. Each can also be
// set through the environment variable named in its EnvVar.
func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		cli.StringFlag{Name: "addr", Value: def.Addr, EnvVar: "TASKS_ADDR", Usage: "HTTP listen address"},
		cli.StringFlag{Name: "static-dir", EnvVar: "TASKS_STATIC_DIR", Usage: "directory with the browser client, served at /"},
		cli.StringFlag{Name: "default-due", Value: def.DefaultDue, EnvVar: "TASKS_DEFAULT_DUE", Usage: "due date (YYYY-MM-DD) for tasks created without one"},
		cli.IntFlag{Name: "history-limit", Value: def.HistoryLimit, EnvVar: "TASKS_HISTORY_LIMIT", Usage: "undo steps kept per user, 0 for unlimited"},
		cli.IntFlag{Name: "notify-limit", Value: def.NotifyLimit, EnvVar: "TASKS_NOTIFY_LIMIT", Usage: "recent tasks listed in the notification feed"},
		cli.StringFlag{Name: "neo4j-uri", EnvVar: "NEO4J_URI", Usage: "mirror task changes to this Neo4j server, e.g. neo4j://localhost:7687"},
		cli.StringFlag{Name: "neo4j-user", Value: def.Neo4j.User, EnvVar: "NEO4J_USER"},
		cli.StringFlag{Name: "neo4j-password", EnvVar: "NEO4J_PASSWORD"},
	}
}

// FromContext reads the flags registered by Flags.
func FromContext(c *cli.Context) Config {
	return Config{
		Addr:         c.String("addr"),
		StaticDir:    c.String("static-dir"),
		DefaultDue:   c.String("default-due"),
		HistoryLimit: c.Int("history-limit"),
		NotifyLimit:  c.Int("notify-limit"),
		Neo4j: Neo4j{
			URI:      c.String("neo4j-uri"),
			User:     c.String("neo4j-user"),
			Password: c.String("neo4j-password"),
		},
	}
}
