package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dshills/atpoint/internal/logging"
)

// Request identifies a buffer revision to analyze.
type Request struct {
	// Path keys the cache; buffers without a file use any stable name.
	Path     string
	Language Language
	Revision uint64
	Text     string
}

// Service parses buffers and caches the latest result per path.
type Service struct {
	logger *zap.Logger
	group  singleflight.Group

	mu    sync.Mutex
	cache map[string]*Result
}

// NewService creates a service. A nil logger disables logging.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logging.WithComponent(logger, "analysis"),
		cache:  make(map[string]*Result),
	}
}

// Analyze returns the result for req, parsing only if the cached result
// for req.Path is for a different revision.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	r, err := s.analyze(ctx, req)
	if err != nil {
		s.logger.Warn("analysis failed",
			zap.String("path", req.Path),
			zap.String("language", string(req.Language)),
			zap.Error(err))
	}
	return r, err
}

func (s *Service) analyze(ctx context.Context, req Request) (*Result, error) {
	lang, err := language(req.Language)
	if err != nil {
		return nil, err
	}

	if r := s.cached(req.Path, req.Revision); r != nil {
		return r, nil
	}

	key := fmt.Sprintf("%s@%d", req.Path, req.Revision)
	v, err, shared := s.group.Do(key, func() (any, error) {
		start := time.Now()
		r, err := parse(ctx, lang, req)
		if err != nil {
			return nil, err
		}
		s.store(req.Path, r)
		s.logger.Debug("analyzed buffer",
			zap.String("path", req.Path),
			zap.Uint64("revision", req.Revision),
			zap.Int("symbols", len(r.symbols)),
			zap.Int("diagnostics", len(r.diagnostics)),
			zap.Duration("elapsed", time.Since(start)))
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("shared analysis", zap.String("key", key))
	}
	return v.(*Result), nil
}

// Forget drops the cached result for path.
func (s *Service) Forget(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, path)
}

func (s *Service) cached(path string, rev uint64) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.cache[path]; ok && r.Revision == rev {
		return r
	}
	return nil
}

func (s *Service) store(path string, r *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.cache[path]; ok && old.Revision > r.Revision {
		return
	}
	s.cache[path] = r
}

func language(l Language) (*sitter.Language, error) {
	switch l {
	case LangGo:
		return golang.GetLanguage(), nil
	case LangPython:
		return python.GetLanguage(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, l)
}

// parse runs tree-sitter over req.Text. Parsers are not safe for
// concurrent use, so each call builds its own.
func parse(ctx context.Context, lang *sitter.Language, req Request) (*Result, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	src := []byte(req.Text)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, req.Path, err)
	}
	defer tree.Close()

	b := newBuilder(req.Language, src, req.Revision)
	b.walk(tree.RootNode())
	return b.result, nil
}
