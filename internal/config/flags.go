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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-mongo-uri mongo connection string for the sync-log document store
//	-mongo-db mongo database name
//	-synclog-backend sync-log store backend ("postgres" or "mongo")
//	-resolver-url base URL of the case-ownership service
//	-resolver-timeout ownership resolver call timeout (e.g., "10s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-audit-interval chain audit worker interval (e.g., "1h")
//	-log-file rotated log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var mongoURI string
	var mongoDatabase string
	var syncLogBackend string
	var resolverURL string
	var resolverTimeout time.Duration
	var requestTimeout time.Duration
	var auditInterval time.Duration
	var logFile string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&mongoURI, "mongo-uri", "", "Mongo connection string")
	flag.StringVar(&mongoDatabase, "mongo-db", "", "Mongo database name")
	flag.StringVar(&syncLogBackend, "synclog-backend", "", "Sync log backend (postgres|mongo)")
	flag.StringVar(&resolverURL, "resolver-url", "", "Case ownership service base URL")
	flag.DurationVar(&resolverTimeout, "resolver-timeout", 0, "Resolver call timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&auditInterval, "audit-interval", 0, "Chain audit interval (e.g., 1h)")
	flag.StringVar(&logFile, "log-file", "", "Rotated log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			SyncLogBackend: syncLogBackend,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Resolver: Resolver{
			BaseURL: resolverURL,
			Timeout: resolverTimeout,
		},
		Workers: Workers{
			AuditInterval: auditInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
