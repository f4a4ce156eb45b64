// visitors.go - privacy-conscious page view metrics
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
)

// VisitStats is the admin summary of recorded page views.
type VisitStats struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueVisitors int64 `json:"unique_visitors"`
	VisitsToday    int64 `json:"visits_today"`
	VisitsThisWeek int64 `json:"visits_this_week"`
}

// VisitStore records page views with hashed client addresses. Raw IPs are
// never written; the salt lives only in memory, so hashes are not linkable
// across restarts.
type VisitStore struct {
	db        *sql.DB
	salt      string
	retention time.Duration
	log       *slog.Logger
	now       func() time.Time
	wg        sync.WaitGroup
}

const createVisitsTable = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
)`

// OpenVisitStore opens (and if needed creates) the SQLite database at path.
func OpenVisitStore(ctx context.Context, path string, retention time.Duration, logger *slog.Logger) (*VisitStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visit store: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createVisitsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visits table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS visits_ts ON visits (ts)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visits index: %w", err)
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &VisitStore{
		db:        db,
		salt:      salt,
		retention: retention,
		log:       logger,
		now:       time.Now,
	}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable for one IP within a process lifetime.
func (s *VisitStore) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores one page view.
func (s *VisitStore) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		s.hashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Prune deletes visits older than the retention window.
func (s *VisitStore) Prune(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune visits: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.log.Info("pruned visit records", "count", n, "retention", s.retention)
	}
	return n, nil
}

// Stats summarizes recorded visits. Days are UTC.
func (s *VisitStore) Stats(ctx context.Context) (*VisitStats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	stats := &VisitStats{}
	queries := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE ts >= ?`, []any{startOfDay}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE ts >= ?`, []any{weekAgo}},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dst); err != nil {
			return nil, fmt.Errorf("visit stats: %w", err)
		}
	}
	return stats, nil
}

// Flush waits for in-flight background writes.
func (s *VisitStore) Flush() {
	s.wg.Wait()
}

// Close flushes pending writes and closes the database.
func (s *VisitStore) Close() error {
	s.Flush()
	return s.db.Close()
}

// Middleware records GET / page views in the background. Requests sending
// DNT: 1 are not recorded.
func (s *VisitStore) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodGet || c.Request.URL.Path != "/" {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		ip, ua, path := c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Record(ctx, ip, ua, path); err != nil {
				s.log.Error("recording visit", "error", err)
			}
		}()
	}
}

func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *VisitStore) registerAdminRoutes(r *gin.Engine, token string) {
	admin := r.Group("/admin/api")
	admin.Use(adminAuth(token))

	admin.GET("/stats", func(c *gin.Context) {
		stats, err := s.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("loading visit stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/prune", func(c *gin.Context) {
		n, err := s.Prune(c.Request.Context())
		if err != nil {
			s.log.Error("pruning visits", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prune visits"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}
