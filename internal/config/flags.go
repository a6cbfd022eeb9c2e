package config

import (
	"errors"
	"flag"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers the SDK configuration flags on the default flag set,
// parses the command line, and returns the flag values as a
// *StructuredConfig suitable for [GetClientConfigWithFlags].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-store-path run store SQLite file path
//	-env-file .env file path
//
// It calls flag.Parse and therefore must run at most once, from a main
// package, after that package registered its own flags.
func ParseFlags() *StructuredConfig {
	collect := registerFlags(flag.CommandLine)
	flag.Parse()

	return collect()
}

// registerFlags defines the configuration flags on fs and returns a function
// collecting their values once fs has been parsed.
func registerFlags(fs *flag.FlagSet) func() *StructuredConfig {
	serverAddress := &NetAddress{}
	requestTimeout := fs.Duration("request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	storePath := fs.String("store-path", "", "Run store SQLite file path")
	envFile := fs.String("env-file", "", ".env file path")

	fs.Var(serverAddress, "a", "Net address host:port")

	return func() *StructuredConfig {
		return &StructuredConfig{
			API: API{
				Host:           serverAddress.Host,
				Port:           serverAddress.Port,
				RequestTimeout: *requestTimeout,
			},
			Store: Store{
				Path: *storePath,
			},
			EnvFilePath: *envFile,
		}
	}
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be any non-empty host name or IP address; the port must be a
// valid TCP port number.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is out of range")
	}

	a.Host = host
	a.Port = port
	return nil
}
