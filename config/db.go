package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN renders the postgres connection string for the configured database.
func (db *DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}

func (db *DB) GormConnect() (*gorm.DB, error) {
	logrus.WithFields(logrus.Fields{"host": db.HOST, "db": db.NAME}).Info("Connecting to database")
	return gorm.Open(postgres.Open(db.DSN()), &gorm.Config{})
}
