package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/airborne_threat_detection/internal/config"
)

const defaultConnectTimeout = 5 * time.Second

// NewPostgresDB создает пул соединений и проверяет его за DBConnectTimeout
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(appCfg)
	if err != nil {
		return nil, err
	}

	timeout := appCfg.DBConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(pingCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgres недоступен по %s: %w", poolCfg.ConnConfig.Host, err)
	}

	return dbpool, nil
}

// poolConfig разбирает DATABASE_URL и накладывает настройки пула из конфигурации.
// Нулевые значения оставляют умолчания pgx.
func poolConfig(appCfg *config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if appCfg.DBMaxConns > 0 {
		poolCfg.MaxConns = appCfg.DBMaxConns
	}
	if appCfg.DBMaxConnIdle > 0 {
		poolCfg.MaxConnIdleTime = appCfg.DBMaxConnIdle
	}
	if appCfg.DBConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = appCfg.DBConnectTimeout
	}
	// имя сервиса видно в pg_stat_activity
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "airborne-threat-detection"
	return poolCfg, nil
}
