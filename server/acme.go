package server

import (
	"golang.org/x/crypto/acme/autocert"
)

// newCertManager creates a manager that gets certificates for the autocert host from Let's Encrypt.
// HTTP-01 challenges are answered by the http server.
func (cfg Config) newCertManager() *autocert.Manager {
	m := autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(cfg.AutocertHost),
	}
	if len(cfg.AutocertDir) != 0 {
		m.Cache = autocert.DirCache(cfg.AutocertDir)
	}
	return &m
}
