package rpc

import (
	"fmt"
	"net/http"

	"github.com/MixinNetwork/fraction/calc"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/VictoriaMetrics/fastcache"
	"github.com/gorilla/handlers"
)

type RPC struct {
	custom     *config.Custom
	store      storage.Store
	calculator *calc.Calculator
	cache      *fastcache.Cache
}

// NewServer serves the calculator, store may be nil to run without history.
func NewServer(custom *config.Custom, store storage.Store, port int) *http.Server {
	router := NewRouter(custom, store)
	handler := handleCORS(router)
	handler = handlers.ProxyHeaders(handler)

	return &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: handler}
}

func newRPC(custom *config.Custom, store storage.Store) *RPC {
	return &RPC{
		custom:     custom,
		store:      store,
		calculator: calc.NewCalculator(custom),
		cache:      fastcache.New(custom.RPC.CacheSize),
	}
}
