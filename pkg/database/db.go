package database

import (
	"Folio/config"
	"Folio/models"
	"Folio/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
// TranslateError 打开后唯一键冲突会返回 gorm.ErrDuplicatedKey
func NewDB(conf *config.Config) *gorm.DB {
	gormConf := &gorm.Config{TranslateError: true}
	if !conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gormConf)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.MySQL.ConnMaxLifetime)

	log.L.Info("connect database success",
		zap.String("host", conf.MySQL.Host),
		zap.Int("max_open_conns", conf.MySQL.MaxOpenConns),
	)
	return db
}

// Migrate 建表/补齐索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
