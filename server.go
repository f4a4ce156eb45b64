package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server serves the pre-rendered page and its assets.
type Server struct {
	engine *gin.Engine
	page   []byte
	etag   string
	log    *slog.Logger
}

// NewServer renders content once and builds the router. visits may be nil,
// in which case no metrics are recorded and the admin API is absent.
func NewServer(content Content, visits *VisitStore, adminToken string, logger *slog.Logger) (*Server, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, content); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())

	s := &Server{
		page: buf.Bytes(),
		etag: `"` + hex.EncodeToString(sum[:8]) + `"`,
		log:  logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	if visits != nil {
		r.Use(visits.Middleware())
		if adminToken != "" {
			visits.registerAdminRoutes(r, adminToken)
		}
	}

	r.GET("/", s.servePage)
	r.HEAD("/", s.servePage)
	r.StaticFS("/static", noListingFS{http.FS(staticFiles)})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return s, nil
}

func (s *Server) servePage(c *gin.Context) {
	c.Header("ETag", s.etag)
	c.Header("Cache-Control", "public, max-age=300")
	c.Header("Content-Type", "text/html; charset=utf-8")
	// ServeContent evaluates If-None-Match against the ETag header above.
	http.ServeContent(c.Writer, c.Request, "", time.Time{}, bytes.NewReader(s.page))
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// noListingFS hides directories so /static/ never produces an index page.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
