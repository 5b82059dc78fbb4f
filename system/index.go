package system

import "park_manager/database"

// Package-level instances wired up in main, the way database.DB is.
var (
	Ctrl *System
	Auth *UserStore
)

func Init(store *database.Store) error {
	var err error
	if Auth, err = NewUserStore(store); err != nil {
		return err
	}
	Ctrl, err = New(store)
	return err
}
