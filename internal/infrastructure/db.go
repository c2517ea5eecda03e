package infrastructure

import (
	"database/sql"
	"fmt"
	"strings"

	"Caixa/config"
	"Caixa/internal/logger"

	"github.com/glebarez/sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDb abre a conexão conforme DB_DRIVER, aplica o pool e roda as migrations.
func NewDb(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		logger.Error().
			Err(err).
			Str("driver", cfg.Database.Driver).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.Log.Level)),
	})
	if err != nil {
		logger.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Falha ao abrir o gorm")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	if isMemorySQLite(cfg.Database) {
		// cada conexão nova em :memory: enxerga um banco vazio
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime.Std())
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		sqlDB, err := sql.Open("pgx", cfg.DSN)
		if err != nil {
			return nil, err
		}
		return postgres.New(postgres.Config{Conn: sqlDB}), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("driver de banco desconhecido: %s", cfg.Driver)
	}
}

func isMemorySQLite(cfg config.DatabaseConfig) bool {
	return cfg.Driver == "sqlite" && strings.Contains(cfg.DSN, ":memory:")
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return gormlogger.Info
	case "warn", "warning":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func RunMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []struct {
		name  string
		model interface{}
	}{
		{"User", &userDB{}},
		{"Expense", &expenseDB{}},
		{"Revenue", &revenueDB{}},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity.model); err != nil {
			logger.Error().
				Err(err).
				Str("entity", entity.name).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}
