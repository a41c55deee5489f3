package db

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	sqlmysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	// maxOpenConns bounds the connection pool; the only resource bound the
	// service enforces.
	maxOpenConns = 10
	connTimeout  = 15 * time.Second
	ioTimeout    = 45 * time.Second

	tlsConfigName = "travellingapp"
)

// NewMySQL returns a connected GORM DB instance. When caCertPath is set, a
// custom TLS config trusting that CA is registered under the name
// "travellingapp"; the DSN must reference it with tls=travellingapp.
func NewMySQL(dsn, caCertPath string) (*gorm.DB, error) {
	if caCertPath != "" {
		if err := registerCACert(caCertPath); err != nil {
			return nil, fmt.Errorf("register ca cert: %w", err)
		}
	}

	cfg, err := sqlmysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = connTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = ioTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = ioTimeout
	}

	db, err := gorm.Open(mysql.Open(cfg.FormatDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	return db, nil
}

func registerCACert(path string) error {
	pem, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return fmt.Errorf("no certificates found in %s", path)
	}
	return sqlmysql.RegisterTLSConfig(tlsConfigName, &tls.Config{RootCAs: pool})
}
