// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port pair. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags from args.
//
// Flags:
//
//	-a              HTTP listen address host:port
//	-d              database DSN
//	-r              Redis URL
//	-c / -config    JSON or YAML config file
//	-env-file       dotenv file
//	-request-timeout request timeout (e.g. "30s")
//	-sync-interval  cache resync period (e.g. "10m")
//	-log-level      zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("kasa-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address        NetAddress
		dsn            string
		redisURL       string
		configPath     string
		envFile        string
		requestTimeout time.Duration
		syncInterval   time.Duration
		logLevel       string
	)

	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "r", "", "Redis URL")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Cache resync interval (e.g. 10m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: dsn},
			Cache: Cache{RedisURL: redisURL},
		},
		Server: Server{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CacheSyncInterval: syncInterval,
		},
		FilePath: configPath,
		EnvFile:  envFile,
	}, nil
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost", empty or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
