// Package config defines the configuration structure for the personnel agent.
//
// Configuration is organized into logical sections (Server, Database, Auth,
// Jobs) and resolved from three layers, highest precedence first:
// environment variables, a YAML configuration file, struct defaults.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - Embedded SQLite storage
//	├── Auth           - Session token settings
//	├── Jobs           - Background worker pool and schedules
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	│ StaticsFolder    │ ""      │ Path to static files for the dashboard │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Database Configuration
//
//	┌───────┬────────────────┬──────────────────────────────────────────┐
//	│ Field │ Default        │ Description                              │
//	├───────┼────────────────┼──────────────────────────────────────────┤
//	│ Path  │ "personnel.db" │ SQLite file path (":memory:" for tests)  │
//	└───────┴────────────────┴──────────────────────────────────────────┘
//
// # Authentication Configuration
//
//	┌───────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field     │ Default │ Description                                  │
//	├───────────┼─────────┼──────────────────────────────────────────────┤
//	│ JWTSecret │ ""      │ Token signing secret (required in prod mode) │
//	│ TokenTTL  │ 12h     │ Session token lifetime                       │
//	└───────────┴─────────┴──────────────────────────────────────────────┘
//
// # Jobs Configuration
//
//	┌─────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field           │ Default │ Description                            │
//	├─────────────────┼─────────┼────────────────────────────────────────┤
//	│ NumWorkers      │ 3       │ Background worker pool size            │
//	│ SyncInterval    │ 1h      │ Medical-record reconciler schedule     │
//	│ AccrualInterval │ 24h     │ Leave accrual evaluation schedule      │
//	└─────────────────┴─────────┴────────────────────────────────────────┘
//
// # Environment Variables
//
// Every key can be set via environment with the FIREHALL_ prefix and
// underscores for nesting, e.g.:
//
//	FIREHALL_SERVER_HTTP_PORT=9000
//	FIREHALL_AUTH_JWT_SECRET=...
//	FIREHALL_DATABASE_PATH=/var/lib/personnel-agent/personnel.db
//
// # Usage Example
//
//	cfg, err := config.Load("") // search ./config.yaml then /etc/personnel-agent
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.HTTPPort)
package config
