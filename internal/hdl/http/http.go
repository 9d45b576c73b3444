package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/config"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/ctrl"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl"
	mid "github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/http/middleware"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/http/utils"
	"go.uber.org/zap"
)

type Handler struct {
	srv  *http.Server
	ctrl ctrl.AppCtrl
	conf *config.Config
	log  *zap.Logger
}

func New(conf *config.Config, ctrl ctrl.AppCtrl, log *zap.Logger) *Handler {
	return &Handler{
		conf: conf,
		ctrl: ctrl,
		log:  log,
	}
}

func (h *Handler) Start(port int) {
	mux := http.NewServeMux()

	RegisterMarketRoutes(mux, h)
	RegisterShopRoutes(mux, h)
	RegisterProfileRoutes(mux, h)

	mux.HandleFunc(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "status", "OK")
		},
	)
	mux.HandleFunc("/", h.notFound)

	handler := mid.RecoverPanic(h.log, mux)
	handler = mid.Tracing(handler)
	handler = mid.AccessLog(h.log, handler)
	handler = mid.CORS(h.conf.CORS.Origins, handler)

	h.srv = &http.Server{
		Handler:      handler,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		h.log.Debug("server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}

// notFound is the catch-all for unknown routes so they end up in the
// access log with a proper envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.ErrResponseWithDetails(w, http.StatusNotFound, hdl.ErrPageNotFound, r.URL.Path)
}
