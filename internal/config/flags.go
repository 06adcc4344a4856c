package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a                 server listen address in format [host]:[port]
//	-d                 database DSN (SQLite path on the client, Postgres URI on the server)
//	-storage           client slot store driver: sqlite | file
//	-f                 JSON slot file path (file driver)
//	-remote            remote collection kind: http | redis | none
//	-remote-address    remote collection server base URL
//	-redis-address     redis collection address host:port
//	-redis-db          redis logical database
//	-request-timeout   outbound/inbound request timeout (e.g. "5s")
//	-sync-timeout      reconciliation timeout (e.g. "30s")
//	-skip-sync         disable start-up reconciliation
//	-deployment-host   host name for which -deployment-author is the default author
//	-deployment-author default author on -deployment-host
//	-log-file          client log file
//	-version           application version
//	-c/-config         json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("project-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, storageDriver, filePath string
	var remoteKind, remoteAddress, redisAddress string
	var redisDB int
	var requestTimeout, syncTimeout time.Duration
	var skipSync bool
	var deploymentHost, deploymentAuthor string
	var logFile, version, jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&storageDriver, "storage", "", "Local storage driver (sqlite|file)")
	fs.StringVar(&filePath, "f", "", "JSON slot file path")
	fs.StringVar(&remoteKind, "remote", "", "Remote collection kind (http|redis|none)")
	fs.StringVar(&remoteAddress, "remote-address", "", "Remote collection server address")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis collection address host:port")
	fs.IntVar(&redisDB, "redis-db", 0, "Redis logical database")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Reconciliation timeout (e.g., 30s)")
	fs.BoolVar(&skipSync, "skip-sync", false, "Disable start-up reconciliation")
	fs.StringVar(&deploymentHost, "deployment-host", "", "Deployment host name")
	fs.StringVar(&deploymentAuthor, "deployment-author", "", "Default author on the deployment host")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			LogFile: logFile,
		},
		Storage: Storage{
			Driver: storageDriver,
			DB:     DB{DSN: databaseDSN},
			Files:  Files{Path: filePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Kind:           remoteKind,
			HTTPAddress:    remoteAddress,
			RedisAddress:   redisAddress,
			RedisDB:        redisDB,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Disabled:         skipSync,
			DeploymentHost:   deploymentHost,
			DeploymentAuthor: deploymentAuthor,
			Timeout:          syncTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
