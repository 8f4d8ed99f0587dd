// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the command-line arguments shared by the server and the
// TUI client.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s server address used by the client in format [host]:[port]
//	-c/-config json file path with configs
//	-document path of the shared YAML document
//	-records-backend file|sqlite|postgres
//	-records-dir record files directory
//	-d records database DSN
//	-images-backend local|s3
//	-images-dir local images directory
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-request-timeout request timeout (e.g., "30s")
//	-admin-password admin bootstrap password
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("acervo", flag.ContinueOnError)

	var serverAddress, adapterAddress NetAddress
	var jsonConfigPath string
	var documentPath string
	var recordsBackend, recordsDir, databaseDSN string
	var imagesBackend, imagesDir string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var adminPassword string
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&adapterAddress, "s", "Server address host:port used by the client")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&documentPath, "document", "", "Shared YAML document path")
	fs.StringVar(&recordsBackend, "records-backend", "", "Record store backend: file, sqlite or postgres")
	fs.StringVar(&recordsDir, "records-dir", "", "Record files directory")
	fs.StringVar(&databaseDSN, "d", "", "Records database DSN")
	fs.StringVar(&imagesBackend, "images-backend", "", "Image store backend: local or s3")
	fs.StringVar(&imagesDir, "images-dir", "", "Images directory")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adminPassword, "admin-password", "", "Admin bootstrap password")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			AdminPassword: adminPassword,
			LogFile:       logFile,
		},
		Storage: Storage{
			Document: Document{Path: documentPath},
			Records: Records{
				Backend: recordsBackend,
				Dir:     recordsDir,
				DSN:     databaseDSN,
			},
			Images: Images{
				Backend: imagesBackend,
				Dir:     imagesDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
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
// It validates the port range and checks IP correctness unless host is
// "localhost".
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
