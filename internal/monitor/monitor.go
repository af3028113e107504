// ===== internal/monitor/monitor.go =====
package monitor

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hostsfile/internal/config"
	"hostsfile/pkg/hosts"
	"hostsfile/pkg/models"
)

// Status describes the last load attempt
type Status struct {
	Path     string
	Records  int
	LoadedAt time.Time
	Err      error
}

// Monitor keeps the last good parse of a hosts file and reloads it on change
type Monitor struct {
	cfg    *config.Config
	parser *hosts.Parser

	doc      *models.Document
	loadedAt time.Time
	lastErr  error

	watcher  *fsnotify.Watcher
	mu       sync.RWMutex
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a new monitor instance
func New(cfg *config.Config) *Monitor {
	return &Monitor{
		cfg:    cfg,
		parser: &hosts.Parser{SkipBadEncoding: cfg.SkipBadEncoding},
		doc:    models.NewDocument(),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start loads the hosts file and, if configured, begins watching it
func (m *Monitor) Start() error {
	if err := m.Reload(); err != nil {
		log.Printf("Warning: failed to load hosts file: %v", err)
	}

	if !m.cfg.Watch {
		close(m.doneCh)
		return nil
	}

	var err error
	m.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		close(m.doneCh)
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Editors often replace the file by rename, so watch the directory
	dir := filepath.Dir(m.cfg.HostsFile)
	if err := m.watcher.Add(dir); err != nil {
		m.watcher.Close()
		close(m.doneCh)
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go m.watchFiles()
	return nil
}

func (m *Monitor) watchFiles() {
	defer close(m.doneCh)

	absHostsPath, _ := filepath.Abs(m.cfg.HostsFile)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			absEventPath, _ := filepath.Abs(event.Name)
			if absEventPath != absHostsPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Printf("File modified: %s", event.Name)
			if err := m.Reload(); err != nil {
				log.Printf("Error reloading hosts file: %v", err)
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-m.stopCh:
			return
		}
	}
}

// Stop stops monitoring. It is safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		if m.watcher != nil {
			m.watcher.Close()
		}
	})
}

// Wait blocks until the watch loop has exited
func (m *Monitor) Wait() {
	<-m.doneCh
}

// Reload parses the hosts file now. On failure the previous document is kept.
func (m *Monitor) Reload() error {
	doc, err := m.parser.LoadFile(m.cfg.HostsFile)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastErr = err
	if err != nil {
		return err
	}

	m.doc = doc
	m.loadedAt = time.Now()

	log.Printf("Loaded %d host entries from %s", doc.Len(), m.cfg.HostsFile)
	return nil
}

// Document returns the last successfully parsed document
func (m *Monitor) Document() *models.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.doc
}

// Status returns the state of the last load
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Status{
		Path:     m.cfg.HostsFile,
		Records:  m.doc.Len(),
		LoadedAt: m.loadedAt,
		Err:      m.lastErr,
	}
}
