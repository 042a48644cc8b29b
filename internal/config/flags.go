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
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-d database DSN (postgres URI or sqlite file)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-challenge-ttl wallet challenge lifetime
//	-version node version
//	-adapter-address contract node http address used by the client
//	-adapter-grpc-address contract node grpc address used by the client
//	-adapter-timeout client request timeout
//	-wallet keystore path
//	-wallet-passphrase keystore passphrase
//	-probe-interval availability probe period
//	-metrics-interval contract metrics report period
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("artisan-market", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, version string
	var tokenDuration, challengeTTL, requestTimeout time.Duration
	var adapterAddress, adapterGRPCAddress string
	var adapterTimeout time.Duration
	var keystorePath, passphrase string
	var probeInterval, metricsInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&challengeTTL, "challenge-ttl", 0, "Wallet challenge lifetime (e.g., 5m)")
	fs.StringVar(&version, "version", "", "Node version")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Contract node HTTP address")
	fs.StringVar(&adapterGRPCAddress, "adapter-grpc-address", "", "Contract node gRPC address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&keystorePath, "wallet", "", "Wallet keystore path")
	fs.StringVar(&passphrase, "wallet-passphrase", "", "Wallet keystore passphrase")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Availability probe period (e.g., 15s)")
	fs.DurationVar(&metricsInterval, "metrics-interval", 0, "Contract metrics report period (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			ChallengeTTL:  challengeTTL,
			Version:       version,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPCAddress,
			RequestTimeout: adapterTimeout,
		},
		Wallet: Wallet{
			KeystorePath: keystorePath,
			Passphrase:   passphrase,
		},
		Workers:      Workers{ProbeInterval: probeInterval, MetricsInterval: metricsInterval},
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
