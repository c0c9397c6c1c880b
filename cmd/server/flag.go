package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jacobpatterson1549/circle-canvas/server"
)

const (
	environmentVariableHost         = "HOST"
	environmentVariablePort         = "PORT"
	environmentVariableHTTPSPort    = "HTTPS_PORT"
	environmentVariableStaticDir    = "STATIC_DIR"
	environmentVariableCacheSec     = "CACHE_SECONDS"
	environmentVariableAutocertHost = "AUTOCERT_HOST"
	environmentVariableAutocertDir  = "AUTOCERT_DIR"
	environmentVariableTLSCertFile  = "TLS_CERT_FILE"
	environmentVariableTLSKeyFile   = "TLS_KEY_FILE"
)

const (
	defaultPort      = 8080
	defaultStaticDir = "static"
	defaultStopDur   = 5 * time.Second
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
type mainFlags struct {
	host         string
	port         int
	httpsPort    int
	staticDir    string
	cacheSec     int
	autocertHost string
	autocertDir  string
	tlsCertFile  string
	tlsKeyFile   string
}

// usage prints how to run the server to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariableHost,
		environmentVariablePort,
		environmentVariableHTTPSPort,
		environmentVariableStaticDir,
		environmentVariableCacheSec,
		environmentVariableAutocertHost,
		environmentVariableAutocertDir,
		environmentVariableTLSCertFile,
		environmentVariableTLSKeyFile,
	}
	fmt.Fprintf(fs.Output(), "Serves the drawing page and its webassembly binary\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(programName string, osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ExitOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key, defaultValue string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return defaultValue
	}
	envValueInt := func(key string, defaultValue int) int {
		v1 := envValue(key, "")
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	fs.StringVar(&m.host, "host", envValue(environmentVariableHost, ""), "The address to listen on.  All interfaces are used if empty.")
	fs.IntVar(&m.port, "port", envValueInt(environmentVariablePort, defaultPort), "The TCP port for server http requests.  All traffic is redirected to the https port if it is specified.")
	fs.IntVar(&m.httpsPort, "https-port", envValueInt(environmentVariableHTTPSPort, 0), "The TCP port for server https requests.  Requires certificate files or an autocert host.")
	fs.StringVar(&m.staticDir, "static-dir", envValue(environmentVariableStaticDir, defaultStaticDir), "The directory of the page files: index.html, main.js, wasm_exec.js, and main.wasm.")
	fs.IntVar(&m.cacheSec, "cache-sec", envValueInt(environmentVariableCacheSec, 0), "The number of seconds static files other than the page are cached.  Files are not cached if zero.")
	fs.StringVar(&m.autocertHost, "autocert-host", envValue(environmentVariableAutocertHost, ""), "The host to automatically get a certificate for when no certificate files are specified.")
	fs.StringVar(&m.autocertDir, "autocert-dir", envValue(environmentVariableAutocertDir, ""), "The directory to store automatic certificates in.")
	fs.StringVar(&m.tlsCertFile, "tls-cert-file", envValue(environmentVariableTLSCertFile, ""), "The path of the certificate file to use for TLS.")
	fs.StringVar(&m.tlsKeyFile, "tls-key-file", envValue(environmentVariableTLSKeyFile, ""), "The path of the key file to use for TLS.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) mainFlags {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programName, programArgs := osArgs[0], osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(programName, osLookupEnvFunc)
	fs.Parse(programArgs)
	return m
}

// serverConfig creates the server configuration from the flags.
func (m mainFlags) serverConfig() server.Config {
	cfg := server.Config{
		Host:         m.host,
		HTTPPort:     m.port,
		HTTPSPort:    m.httpsPort,
		StopDur:      defaultStopDur,
		CacheSec:     m.cacheSec,
		TLSCertFile:  m.tlsCertFile,
		TLSKeyFile:   m.tlsKeyFile,
		AutocertHost: m.autocertHost,
		AutocertDir:  m.autocertDir,
	}
	return cfg
}
