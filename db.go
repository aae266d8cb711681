package main

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type mysqlConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	DBName string `yaml:"dbname"`
}

type sqliteConfig struct {
	Path string `yaml:"path"`
}

// DashboardLoadRow is one recorded page load. Stats payloads are never
// stored, only what happened to each section.
type DashboardLoadRow struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement;comment:auto increment id"`
	LoadID       string         `gorm:"size:36;not null;uniqueIndex:uk_load_id;comment:load UUID"`
	StartedAt    time.Time      `gorm:"not null;index:idx_started_at;comment:load start (UTC)"`
	FinishedAt   time.Time      `gorm:"not null;comment:load end (UTC)"`
	ElapsedMs    int64          `gorm:"not null;comment:wall time of the whole load"`
	Rendered     uint32         `gorm:"not null;comment:sections rendered"`
	Skipped      uint32         `gorm:"not null;comment:sections skipped"`
	Failed       uint32         `gorm:"not null;comment:sections failed"`
	Defect       string         `gorm:"size:512;not null;default:'';comment:error that escaped section isolation"`
	SectionsJSON datatypes.JSON `gorm:"not null;comment:per-section state snapshot"`
	CreatedAt    time.Time      `gorm:"autoCreateTime:milli"`
}

func (DashboardLoadRow) TableName() string {
	return "dashboard_load"
}

type SectionOutcomeRow struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	LoadRowID  uint64    `gorm:"not null;index:idx_outcome_load;comment:dashboard_load.id"`
	Section    string    `gorm:"size:64;not null;index:idx_section_time,priority:1;comment:section name"`
	Endpoint   string    `gorm:"size:128;not null;comment:backend endpoint"`
	State      string    `gorm:"size:16;not null;comment:rendered|skipped|failed"`
	Error      string    `gorm:"size:512;not null;default:''"`
	DurationMs int64     `gorm:"not null"`
	StartedAt  time.Time `gorm:"not null;index:idx_section_time,priority:2;comment:copied from the load"`
}

func (SectionOutcomeRow) TableName() string {
	return "dashboard_section_outcome"
}

// openDB returns nil when history is disabled.
func openDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case "none":
		return nil, nil
	case "mysql":
		m := cfg.MySQL
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			m.User,
			m.Pass,
			m.Host,
			m.Port,
			m.DBName,
		)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Storage.Driver == "sqlite" {
		// One writer, and ":memory:" databases are per connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&DashboardLoadRow{}, &SectionOutcomeRow{}); err != nil {
		return nil, err
	}

	return db, nil
}
