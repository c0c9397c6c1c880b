// Package server serves the drawing page and its webassembly binary.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jacobpatterson1549/circle-canvas/server/log"
	"golang.org/x/crypto/acme/autocert"
)

type (
	// Server runs the site
	Server struct {
		log         log.Logger
		HTTPServer  *http.Server
		HTTPSServer *http.Server
		certManager *autocert.Manager
		wg          sync.WaitGroup
		Config
	}

	// Config contains fields which describe the server
	Config struct {
		// Host is the address the servers listen on.  All interfaces are used if empty.
		Host string
		// HTTPPort is the TCP port for server http requests.  All traffic is redirected to the https port when it is set.
		HTTPPort int
		// HTTPSPort is the TCP port for server https requests.  Only http requests are served if the port is zero.
		HTTPSPort int
		// StopDur is the maximum duration to wait for requests to finish when the server is stopped.
		StopDur time.Duration
		// CacheSec is the number of seconds static files other than the page are cached.  Zero disables caching.
		CacheSec int
		// TLSCertFile is the path of the public HTTPS certificate file.
		TLSCertFile string
		// TLSKeyFile is the path of the private HTTPS key file.
		TLSKeyFile string
		// AutocertHost is the host to get certificates for automatically when no certificate files are given.
		AutocertHost string
		// AutocertDir is the directory the automatic certificates are stored in.  They are not stored if empty.
		AutocertDir string
	}

	// Parameters contains the interfaces needed to create a new server
	Parameters struct {
		log.Logger
		// StaticFS contains index.html, main.js, wasm_exec.js, and main.wasm.
		StaticFS fs.FS
	}
)

// NewServer creates a Server from the Config
func (cfg Config) NewServer(p Parameters) (*Server, error) {
	if err := cfg.validate(p); err != nil {
		return nil, fmt.Errorf("creating server: validation: %w", err)
	}
	s := Server{
		log:    p.Logger,
		Config: cfg,
	}
	fileHandler := cfg.fileHandler(p.StaticFS)
	httpHandler := fileHandler
	if cfg.hasTLS() {
		httpHandler = httpsRedirectHandler(cfg.HTTPSPort)
		if cfg.autocert() {
			s.certManager = cfg.newCertManager()
			httpHandler = s.certManager.HTTPHandler(httpHandler)
		}
		s.HTTPSServer = &http.Server{
			Addr:         cfg.addr(cfg.HTTPSPort),
			Handler:      fileHandler,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
		}
		if s.certManager != nil {
			s.HTTPSServer.TLSConfig = s.certManager.TLSConfig()
		}
	}
	s.HTTPServer = &http.Server{
		Addr:         cfg.addr(cfg.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return &s, nil
}

// validate ensures the configuration and parameters have no errors.
func (cfg Config) validate(p Parameters) error {
	switch {
	case p.Logger == nil:
		return errors.New("log required")
	case p.StaticFS == nil:
		return errors.New("static file system required")
	case cfg.StopDur <= 0:
		return errors.New("stop timeout duration required")
	case cfg.CacheSec < 0:
		return errors.New("nonnegative cache seconds required")
	case cfg.HTTPPort <= 0:
		return errors.New("positive http port required")
	case cfg.HTTPSPort < 0:
		return errors.New("nonnegative https port required")
	case cfg.HTTPSPort == cfg.HTTPPort:
		return errors.New("http and https ports must differ")
	case cfg.hasTLS() && !cfg.hasCertFiles() && !cfg.autocert():
		return errors.New("https requires certificate files or an autocert host")
	case len(cfg.TLSCertFile) == 0 != (len(cfg.TLSKeyFile) == 0):
		return errors.New("both or neither of the tls certificate and key files required")
	}
	return nil
}

// addr is the address to listen to on the port.
func (cfg Config) addr(port int) string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(port))
}

// hasTLS determines if https requests are served.
func (cfg Config) hasTLS() bool {
	return cfg.HTTPSPort > 0
}

// hasCertFiles determines if certificate files were given.
func (cfg Config) hasCertFiles() bool {
	return len(cfg.TLSCertFile) != 0 && len(cfg.TLSKeyFile) != 0
}

// autocert determines if certificates are managed automatically.
// Certificate files are used instead of automatic certificates if both are configured.
func (cfg Config) autocert() bool {
	return len(cfg.AutocertHost) != 0 && !cfg.hasCertFiles()
}

// Run the server asynchronously until it receives a shutdown signal.
// When the HTTP/HTTPS servers stop, errors are logged to the error channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 2)
	s.runHTTPServer(ctx, errC)
	s.runHTTPSServer(ctx, errC)
	return errC
}

// runHTTPServer runs the http server asynchronously, adding the return error to the channel when done.
func (s *Server) runHTTPServer(ctx context.Context, errC chan<- error) {
	s.log.Printf("starting http server at http://%v", s.HTTPServer.Addr)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		errC <- s.HTTPServer.ListenAndServe()
	}()
}

// runHTTPSServer runs the https server asynchronously, adding the return error to the channel when done.
// The server is only run if it is configured.
func (s *Server) runHTTPSServer(ctx context.Context, errC chan<- error) {
	if s.HTTPSServer == nil {
		return
	}
	s.log.Printf("starting https server at https://%v", s.HTTPSServer.Addr)
	certFile, keyFile := s.TLSCertFile, s.TLSKeyFile
	if s.certManager != nil {
		certFile, keyFile = "", "" // certificates are provided by the TLSConfig
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		errC <- s.HTTPSServer.ListenAndServeTLS(certFile, keyFile)
	}()
}

// Stop asks the server to shutdown and waits for the shutdown to complete.
// An error is returned if the server if the context times out.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	var httpsShutdownErr error
	if s.HTTPSServer != nil {
		httpsShutdownErr = s.HTTPSServer.Shutdown(ctx)
	}
	httpShutdownErr := s.HTTPServer.Shutdown(ctx)
	switch {
	case httpsShutdownErr != nil:
		return fmt.Errorf("stopping https server: %w", httpsShutdownErr)
	case httpShutdownErr != nil:
		return fmt.Errorf("stopping http server: %w", httpShutdownErr)
	}
	s.wg.Wait()
	return nil
}
