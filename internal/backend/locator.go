// Package backend resolves the optional storage capabilities (relational
// database, blob store) once at startup. Either capability may be absent;
// callers branch on HasDB/HasBlob and fall back accordingly.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jeremyjsx/journal/internal/config"
	"github.com/jeremyjsx/journal/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Backends holds the capability handles for one process. A nil field means
// the capability is absent, which is an expected state, not an error.
type Backends struct {
	DB     *sql.DB
	Driver string
	Blob   storage.Storage
}

func (b *Backends) HasDB() bool   { return b != nil && b.DB != nil }
func (b *Backends) HasBlob() bool { return b != nil && b.Blob != nil }

// Resolve probes an ordered candidate list per capability: the explicit
// config value first, then environment aliases kept for compatibility with
// older deployments. The two capabilities resolve independently. It runs
// exactly once at startup; request paths only see the returned struct.
func Resolve(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backends, error) {
	b := &Backends{}

	dsn := firstNonEmpty(cfg.DatabaseURL, os.Getenv("POSTGRES_URL"), os.Getenv("SQLITE_PATH"))
	if dsn != "" {
		driver := cfg.DatabaseDriver
		if driver == "" {
			driver = DriverFor(dsn)
		}
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("open database (%s): %w", driver, err)
		}
		b.DB = db
		b.Driver = driver
	}

	bucket := firstNonEmpty(cfg.S3Bucket, os.Getenv("STORAGE_BUCKET"))
	if bucket != "" {
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("build s3 client: %w", err)
		}
		b.Blob = storage.NewS3Storage(client, bucket)
	}

	logger.Info("backends resolved", "db", b.HasDB(), "driver", b.Driver, "blob", b.HasBlob())
	return b, nil
}

func newS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// DriverFor infers the sql driver from the DSN shape. Anything that is not
// recognizably Postgres is treated as a SQLite path; the managed table this
// service targets speaks SQLite too.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return DriverPostgres
	}
	return DriverSQLite
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
