package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/acme/autocert"
)

// setupTLS builds a TLS config backed by autocert, restricted to the
// configured domain and its www alias.
func setupTLS(domain string) *tls.Config {
	if err := os.MkdirAll("certs", 0700); err != nil {
		log.Printf("Warning: Failed to create certs directory: %v", err)
	}

	manager := &autocert.Manager{
		Cache:  autocert.DirCache("certs"),
		Prompt: autocert.AcceptTOS,
		HostPolicy: func(ctx context.Context, host string) error {
			if strings.EqualFold(host, domain) || strings.EqualFold(host, "www."+domain) {
				return nil
			}
			log.Printf("Rejecting certificate request for invalid host: %s", host)
			return fmt.Errorf("host %s not configured", host)
		},
	}

	return &tls.Config{
		GetCertificate:   manager.GetCertificate,
		MinVersion:       tls.VersionTLS12,
		CurvePreferences: []tls.CurveID{tls.X25519, tls.CurveP256},
	}
}
