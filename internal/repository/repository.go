package repository

import (
	"gorm.io/gorm"
)

func searchCodeName(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + search + "%"
	return db.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
}

// deleteByID soft-deletes a row and reports gorm.ErrRecordNotFound when
// nothing matched, so handlers can answer 404 instead of a silent success.
func deleteByID(db *gorm.DB, value interface{}, id uint) error {
	res := db.Delete(value, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// purgeByID removes a row permanently so its unique key can be reused.
func purgeByID(db *gorm.DB, value interface{}, id uint) error {
	return deleteByID(db.Unscoped(), value, id)
}

// monthPattern matches YYYY-MM-DD columns for one month.
func monthPattern(month, year string) string {
	return year + "-" + month + "%"
}
