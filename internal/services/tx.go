package services

import "gorm.io/gorm"

// runInTx executes fn inside one database transaction. A nil db (unit tests
// wiring fake repos) runs fn directly without transactional scope.
func runInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}
