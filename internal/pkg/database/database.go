package database

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	"gestaocontratos/migrations"

	// Drivers registrados no database/sql
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Drivers suportados (valor de DB_DRIVER).
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDB inicializa e configura o pool de conexões para o driver informado.
// Retorna a conexão *sql.DB pronta para uso.
func NewDB(driver, dataSourceName string) (*sql.DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("driver de banco não suportado: %q", driver)
	}

	// 1. Abrir a Conexão
	db, err := sql.Open(driver, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// 2. Testar a Conexão Imediatamente
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// 3. Configuração do Connection Pool
	if driver == DriverSQLite {
		// SQLite serializa escritas; uma conexão evita "database is locked".
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		db.SetConnMaxIdleTime(2 * time.Minute)
	}

	log.Printf("✅ Pool de Conexões (%s) configurado e pronto.", driver)

	return db, nil
}

// Migrate aplica (ou reverte) as migrações embutidas usando o goose.
// command segue a CLI do goose: "up", "down", "status", "version"...
func Migrate(db *sql.DB, driver, command string, args ...string) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	dialect := driver
	if driver == DriverSQLite {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}
	if err := goose.Run(command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Rebind converte placeholders "?" para o formato posicional do driver ($1, $2... no PostgreSQL).
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
