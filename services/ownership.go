package services

import (
	"errors"

	"gorm.io/gorm"
)

// owned is implemented by every model that belongs to exactly one user.
type owned interface{ OwnerID() uint }

// getOwned fetches a record by id and enforces ownership. Existence is
// checked first, so a valid id owned by someone else yields ErrNotOwner
// rather than ErrNotFound.
func getOwned[M any, PM interface {
	*M
	owned
}](db *gorm.DB, id, userID uint) (PM, error) {
	var m M
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pm := PM(&m)
	if pm.OwnerID() != userID {
		return nil, ErrNotOwner
	}
	return pm, nil
}
