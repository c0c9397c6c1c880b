// Package main starts the server after configuring it from supplied or standard arguments
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacobpatterson1549/circle-canvas/server"
)

// main configures and runs the server.
func main() {
	ctx := context.Background()
	logFlags := log.Ldate | log.Ltime | log.LUTC | log.Lshortfile | log.Lmsgprefix
	log := log.New(os.Stdout, "", logFlags)
	m := newMainFlags(os.Args, os.LookupEnv)
	server, err := m.createServer(log)
	if err != nil {
		log.Fatalf("creating server: %v", err)
	}
	done := make(chan os.Signal, 2)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	if err := runServer(ctx, server, log, done); err != nil {
		log.Fatalf("running server: %v", err)
	}
	log.Println("server run stopped successfully")
}

// createServer creates the server for the static files in the directory of the flags.
func (m mainFlags) createServer(log *log.Logger) (*server.Server, error) {
	fi, err := os.Stat(m.staticDir)
	switch {
	case err != nil:
		return nil, fmt.Errorf("checking static directory: %w", err)
	case !fi.IsDir():
		return nil, fmt.Errorf("static directory is not a directory: %v", m.staticDir)
	}
	p := server.Parameters{
		Logger:   log,
		StaticFS: os.DirFS(m.staticDir),
	}
	cfg := m.serverConfig()
	return cfg.NewServer(p)
}

// runServer runs the server until it is interrupted or terminated.
func runServer(ctx context.Context, server *server.Server, log *log.Logger, done <-chan os.Signal) error {
	errC := server.Run(ctx)
	select { // BLOCKING
	case err := <-errC:
		switch {
		case errors.Is(err, http.ErrServerClosed):
			log.Printf("server shutdown triggered")
		default:
			log.Printf("server stopped unexpectedly: %v", err)
		}
	case signal := <-done:
		log.Printf("handled signal: %v", signal)
	}
	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	return nil
}
