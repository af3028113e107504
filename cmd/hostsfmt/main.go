// ===== cmd/hostsfmt/main.go =====
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"

	"hostsfile/internal/config"
	"hostsfile/internal/export"
	"hostsfile/internal/monitor"
	"hostsfile/internal/web"
	"hostsfile/pkg/hosts"
	"hostsfile/pkg/models"
)

var (
	sha1ver   string
	buildTime string
	repoName  string
)

// Options are the command line flags; set values override the config file
type Options struct {
	Config          string `short:"c" long:"config" default:"hostsfmt.ini" description:"INI configuration file"`
	File            string `short:"f" long:"file" description:"Hosts file to read, - for stdin"`
	Format          string `long:"format" choice:"hosts" choice:"json" choice:"yaml" choice:"zone" description:"Output format"`
	TTL             uint32 `long:"ttl" description:"TTL for zone output"`
	Serve           bool   `long:"serve" description:"Serve the hosts file over HTTP and reload it on change"`
	Listen          string `long:"listen" description:"HTTP listen address"`
	SkipBadEncoding bool   `long:"skip-bad-encoding" description:"Skip lines that are not valid UTF-8"`
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.New(opts.Config)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	applyOptions(cfg, opts)

	if opts.Serve {
		serve(cfg)
		return
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hostsfmt: %v\n", err)
		os.Exit(1)
	}
}

// applyOptions copies the flags that were given over cfg
func applyOptions(cfg *config.Config, opts Options) {
	if opts.File != "" {
		cfg.HostsFile = opts.File
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.TTL != 0 {
		cfg.ZoneTTL = opts.TTL
	}
	if opts.Listen != "" {
		cfg.HTTPListen = opts.Listen
	}
	if opts.SkipBadEncoding {
		cfg.SkipBadEncoding = true
	}
}

// run parses the configured hosts file once and prints it
func run(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	parser := &hosts.Parser{SkipBadEncoding: cfg.SkipBadEncoding}

	var (
		doc *models.Document
		err error
	)
	if cfg.HostsFile == "-" {
		buf, errRead := io.ReadAll(stdin)
		if errRead != nil {
			return &hosts.Error{Kind: hosts.KindReadFailed, Path: "<stdin>", Err: errRead}
		}
		doc, err = parser.Parse(buf)
	} else {
		doc, err = parser.LoadFile(cfg.HostsFile)
	}
	if err != nil {
		return err
	}

	return export.Write(stdout, doc, cfg.Format, cfg.ZoneTTL)
}

func serve(cfg *config.Config) {
	log.Printf("%s: Build %s, Time %s", repoName, sha1ver, buildTime)

	if cfg.HostsFile == "-" {
		log.Fatalf("Cannot serve from stdin")
	}

	mon := monitor.New(cfg)
	if err := mon.Start(); err != nil {
		log.Fatalf("Failed to start monitor: %v", err)
	}
	defer mon.Stop()

	webServer := web.NewServer(cfg, mon)
	go func() {
		log.Printf("Starting HTTP server on %s", cfg.HTTPListen)
		if err := webServer.Start(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
}
