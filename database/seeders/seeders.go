// Package seeders fills an empty database with starter data for local
// development.
package seeders

import (
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/pkg/logger"
)

type Seeder interface {
	Name() string
	Run(db *gorm.DB) error
}

var registry []Seeder

func Register(s Seeder) {
	registry = append(registry, s)
}

// Run executes every registered seeder in order.
func Run(db *gorm.DB) error {
	for _, s := range registry {
		if err := s.Run(db); err != nil {
			return err
		}
		logger.Info("seeder complete", "seeder", s.Name())
	}
	return nil
}
