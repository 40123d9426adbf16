package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server's command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-register-rate accepted registrations per second (0 = unlimited)
//	-register-burst registration limiter burst
//	-f base path of the sharded filesystem store
//	-d database DSN
//	-db-driver database/sql driver: pgx or sqlite3
//	-link-ttl lifetime of pairing links (e.g., "15m")
//	-link-sweep-interval background link sweep interval
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var registerRate float64
	var registerBurst int
	var basePath string
	var databaseDSN string
	var databaseDriver string
	var linkTTL time.Duration
	var linkSweepInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("habit-sync-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&registerRate, "register-rate", 0, "Accepted registrations per second (0 = unlimited)")
	fs.IntVar(&registerBurst, "register-burst", 0, "Registration limiter burst")
	fs.StringVar(&basePath, "f", "", "Base path of the filesystem record store")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.DurationVar(&linkTTL, "link-ttl", 0, "Pairing link lifetime (e.g., 15m)")
	fs.DurationVar(&linkSweepInterval, "link-sweep-interval", 0, "Expired link sweep interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Files: Files{
				BasePath: basePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RegisterRate:   registerRate,
			RegisterBurst:  registerBurst,
		},
		Links: Links{
			TTL:           linkTTL,
			SweepInterval: linkSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
