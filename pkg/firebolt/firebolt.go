package firebolt

import (
	"context"
	"fmt"
	"net/url"

	_ "github.com/firebolt-db/firebolt-go-sdk" // регистрирует драйвер "firebolt"
	"github.com/jmoiron/sqlx"
	"github.com/shenikar/accident_map/internal/config"
)

const driverName = "firebolt"

// Session - открытое соединение с хранилищем. *sqlx.DB удовлетворяет этому интерфейсу.
type Session interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Close() error
}

// Connector открывает короткоживущие соединения с Firebolt
type Connector struct {
	dsn string
}

// NewConnector создает Connector по учетным данным из конфигурации.
// Пустые значения не проверяются: ошибка проявится при подключении.
func NewConnector(cfg *config.Config) *Connector {
	return &Connector{dsn: DSN(cfg)}
}

// DSN собирает строку подключения для драйвера firebolt
func DSN(cfg *config.Config) string {
	params := url.Values{}
	params.Set("account_name", cfg.FireboltAccount)
	params.Set("client_id", cfg.FireboltClientID)
	params.Set("client_secret", cfg.FireboltClientSecret)
	if cfg.FireboltEngine != "" {
		params.Set("engine", cfg.FireboltEngine)
	}
	return fmt.Sprintf("firebolt:///%s?%s", url.PathEscape(cfg.FireboltDatabase), params.Encode())
}

// Connect открывает соединение и проверяет аутентификацию. Вызывающий обязан закрыть Session.
func (c *Connector) Connect(ctx context.Context) (Session, error) {
	db, err := sqlx.Open(driverName, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть соединение с firebolt: %w", err)
	}
	// одно соединение на запрос, без пула
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("не удалось подключиться к firebolt: %w", err)
	}
	return db, nil
}
