package photon

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Frontend is the stable surface of the lexical core: tokenize a file,
// tokenize in-memory text, and report run statistics. The concrete
// engine stays behind this interface; the factory presets below cover
// the common configurations.
type Frontend interface {
	// TokenizeFile loads the file at path and tokenizes it.
	TokenizeFile(path string) (*TokenStream, error)

	// TokenizeSource tokenizes in-memory content registered under name.
	TokenizeSource(name, content string) (*TokenStream, error)

	// Stats reports counters aggregated over every tokenization run.
	Stats() Stats
}

// frontend is the single concrete Frontend implementation.
type frontend struct {
	mu      sync.Mutex
	sources *SourceManager
	lexer   *Lexer
}

// NewFrontend returns a frontend with the standard configuration:
// strict errors, keyword optimization, no trivia tokens.
func NewFrontend() Frontend {
	return NewFrontendWith(DefaultConfig())
}

// NewIDEFrontend returns a frontend tuned for editors: comments and
// whitespace preserved and error recovery enabled, so a stream comes
// back even for broken buffers.
func NewIDEFrontend() Frontend {
	cfg := DefaultConfig()
	cfg.PreserveComments = true
	cfg.PreserveWhitespace = true
	cfg.StrictMode = false
	return NewFrontendWith(cfg)
}

// NewTestFrontend returns a frontend for test harnesses: recovery mode
// with a small arena so block chaining is exercised early.
func NewTestFrontend() Frontend {
	cfg := DefaultConfig()
	cfg.StrictMode = false
	cfg.BufferSize = 1024
	return NewFrontendWith(cfg)
}

// NewFrontendWith returns a frontend using an explicit configuration.
func NewFrontendWith(config Config) Frontend {
	sources := NewSourceManager()
	return &frontend{
		sources: sources,
		lexer:   NewLexer(sources, config),
	}
}

func (f *frontend) TokenizeFile(path string) (*TokenStream, error) {
	id, err := f.sources.LoadFile(path)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lexer.TokenizeFile(id)
}

func (f *frontend) TokenizeSource(name, content string) (*TokenStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lexer.TokenizeSource(name, content)
}

func (f *frontend) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lexer.Stats()
}

// TokenizeFiles tokenizes several files concurrently: one lexer with
// its own arena per file, all resolving against the shared manager.
// The result maps each path to its stream. The first failure cancels
// nothing already scanned but surfaces as the returned error.
func TokenizeFiles(sources *SourceManager, config Config, paths []string) (map[string]*TokenStream, error) {
	var (
		mu      sync.Mutex
		streams = make(map[string]*TokenStream, len(paths))
	)

	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			id, err := sources.LoadFile(path)
			if err != nil {
				return err
			}
			stream, err := NewLexer(sources, config).TokenizeFile(id)
			if err != nil {
				return err
			}
			mu.Lock()
			streams[path] = stream
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return streams, nil
}
