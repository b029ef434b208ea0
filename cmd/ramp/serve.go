package main

import (
	"github.com/tagalong/ramp/pkg/api/http/server"
)

const (
	docServe = `Run the health & static asset server.

This serves the operational surface only: the health endpoint clients poll
to absorb cold-start latency, and the collected static asset tree.`
)

type optsServe struct {
	optsGeneral

	Addr    string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`
	TLSCert string `long:"cert" env:"CERT" description:"Path to TLS certificate"`
	TLSKey  string `long:"key" env:"KEY" description:"Path to TLS key"`

	StaticDir string `long:"static-dir" env:"STATIC_DIR" default:"staticfiles" description:"Serve static files from this directory"`
}

func (c *optsServe) Execute(args []string) error {
	c.setupLogging()

	s := server.NewServer(c.Addr, c.StaticDir, c.TLSCert, c.TLSKey, c.Debug)
	return s.ServeForever()
}
