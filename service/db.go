package service

import (
	"fmt"
	"log"
	"os"
	"time"

	"hydrocalc/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

type DBConfig struct {
	DSN          string
	Replicas     []string
	MaxOpenConns int
	MaxIdleConns int
}

func dialector(dsn string) gorm.Dialector {
	return mysql.Open(dsn)
}

// OpenDB 连接 mysql，注册读库并建表
func OpenDB(cfg DBConfig, level gormLogger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg.DSN), &gorm.Config{
		Logger: gormLogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormLogger.Config{
			SlowThreshold: time.Second,
			LogLevel:      level,
			Colorful:      true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err = Migrate(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 注册读库并建表
func Migrate(db *gorm.DB, cfg DBConfig) error {
	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, dsn := range cfg.Replicas {
			replicas = append(replicas, dialector(dsn))
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if cfg.MaxOpenConns > 0 {
			resolver = resolver.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			resolver = resolver.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if err := db.Use(resolver); err != nil {
			return fmt.Errorf("register read replicas: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return db.AutoMigrate(&model.CalculationRecord{})
}
