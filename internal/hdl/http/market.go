package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/config"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/ctrl"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/dto"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/http/utils"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/validation"
	metrics "github.com/St0pfen/Steam-Market-REST-API-server/internal/observability/metrics/prometheus"
	"go.uber.org/zap"
)

func RegisterMarketRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("/api/v1/steam/item/", h.itemPrice)
	mux.HandleFunc("/api/v1/steam/search", h.searchItems)
	mux.HandleFunc("/api/v1/steam/popular", h.popularItems)
}

// appIDParam parses the app_id query parameter, defaulting to CS2.
func appIDParam(r *http.Request) int {
	appID, err := strconv.Atoi(r.URL.Query().Get("app_id"))
	if err != nil {
		return config.DefaultAppID
	}
	return appID
}

func countParam(r *http.Request, fallback int) int {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		return fallback
	}
	return count
}

func (h *Handler) itemPrice(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "market.itemPrice.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/v1/steam/item/")
	name, err := url.PathUnescape(name)
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	if err = validation.ItemName(name); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	appID := appIDParam(r)
	if err = validation.AppID(appID); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.GetItemPrice(r.Context(), name, appID)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		h.log.Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.JSONResponse(
		w, c, &dto.PriceResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Item:      res,
		},
	)
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "market.searchItems.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if err := validation.SearchQuery(query); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	appID := appIDParam(r)
	if err := validation.AppID(appID); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.SearchItems(r.Context(), query, appID, countParam(r, 0))
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		h.log.Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.JSONResponse(
		w, c, &dto.ItemsResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Items:     res,
		},
	)
}

func (h *Handler) popularItems(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "market.popularItems.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	appID := appIDParam(r)
	if err := validation.AppID(appID); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.PopularItems(r.Context(), appID, countParam(r, 0))
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		h.log.Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.JSONResponse(
		w, c, &dto.ItemsResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Items:     res,
		},
	)
}
