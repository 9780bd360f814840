package cmd

import (
	"fmt"

	"gorm.io/gorm"

	"storefront.GO/config"
	"storefront.GO/gateway"
	"storefront.GO/store/cart"
	"storefront.GO/store/local"
	"storefront.GO/store/notify"
	"storefront.GO/store/wishlist"
)

// session is the composition root a command runs against: one local DB, the
// persistent stores loaded from it, a gateway, and the notification sink.
type session struct {
	db         *gorm.DB
	gw         *gateway.Gateway
	cart       *cart.Store
	wishlist   *wishlist.Store
	dispatcher notify.Dispatcher
}

func newSession() (*session, error) {
	config.InitRedis()
	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("open local db: %w", err)
	}
	kv := local.New(db)
	return &session{
		db:         db,
		gw:         gateway.New(""),
		cart:       cart.New(kv),
		wishlist:   wishlist.New(kv),
		dispatcher: notify.LogDispatcher{},
	}, nil
}
