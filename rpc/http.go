package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/dimfeld/httptreemux"
	"github.com/unrolled/render"
)

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type Render struct {
	w    http.ResponseWriter
	impl *render.Render
}

func (r *Render) RenderData(data interface{}) {
	r.impl.JSON(r.w, http.StatusOK, map[string]interface{}{"data": data})
}

func (r *Render) RenderError(err error) {
	r.impl.JSON(r.w, http.StatusOK, map[string]interface{}{"error": err.Error()})
}

func NewRouter(custom *config.Custom, store storage.Store) *httptreemux.TreeMux {
	router, impl := httptreemux.New(), newRPC(custom, store)
	router.POST("/", impl.handle)
	registerHandlers(router)
	return router
}

func registerHandlers(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{"error": "not found"})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{"error": "not found"})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("RPC PANIC %s %v\n", r.URL.Path, rcv)
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": fmt.Sprint(rcv)})
	}
}

func (impl *RPC) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(r.Body)
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Verbosef("RPC %s %v\n", call.Method, call.Params)
	rdr := &Render{w: w, impl: render.New()}
	switch call.Method {
	case "getinfo":
		rdr.RenderData(impl.getInfo())
	case "evaluate":
		res, err := impl.evaluate(call.Params)
		if err != nil {
			rdr.RenderError(err)
		} else {
			rdr.RenderData(res)
		}
	case "report":
		res, err := impl.report(call.Params)
		if err != nil {
			rdr.RenderError(err)
		} else {
			rdr.RenderData(res)
		}
	case "listhistory":
		records, err := impl.listHistory(call.Params)
		if err != nil {
			rdr.RenderError(err)
		} else {
			rdr.RenderData(records)
		}
	case "gethistory":
		record, err := impl.getHistory(call.Params)
		if err != nil {
			rdr.RenderError(err)
		} else {
			rdr.RenderData(record)
		}
	default:
		rdr.RenderError(fmt.Errorf("invalid method %s", call.Method))
	}
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,POST")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}
