package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/ctrl"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/dto"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/http/utils"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/validation"
	metrics "github.com/St0pfen/Steam-Market-REST-API-server/internal/observability/metrics/prometheus"
	"go.uber.org/zap"
)

func RegisterShopRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("/api/v1/test", h.test)
	mux.HandleFunc("/api/v1/steam/status", h.steamStatus)
	mux.HandleFunc("/api/v1/steam/apps", h.supportedApps)
	mux.HandleFunc("/api/v1/steam/app/", h.appDetails)
	mux.HandleFunc("/api/v1/steam/find-app", h.findApp)
}

func (h *Handler) test(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "shop.test.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	utils.JSONResponse(
		w, c, &dto.TestResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Message:   h.conf.ServiceName + " " + h.conf.AppVersion + " is running",
			App:       h.conf.ServiceName,
			Version:   h.conf.AppVersion,
		},
	)
}

func (h *Handler) steamStatus(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "shop.steamStatus.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	res, err := h.ctrl.SteamStatus(r.Context())
	if err != nil {
		c = http.StatusInternalServerError
		h.log.Debug(
			hdl.ErrInternal.Error(),
			zap.String("op", op), zap.Error(err),
		)
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.JSONResponse(
		w, c, &dto.StatusResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Status:    res,
		},
	)
}

func (h *Handler) supportedApps(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "shop.supportedApps.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	utils.JSONResponse(
		w, c, &dto.AppsResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Apps:      h.ctrl.SupportedApps(r.Context()),
		},
	)
}

func (h *Handler) appDetails(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "shop.appDetails.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	appID, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/v1/steam/app/"))
	if err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, validation.AppIDIsInvalid)
		return
	}

	if err = validation.AppID(appID); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.GetApp(r.Context(), appID)
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
		w, c, &dto.AppResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			App:       res,
		},
	)
}

func (h *Handler) findApp(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "shop.findApp.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	if err := validation.AppName(name); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.FindApp(r.Context(), name)
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
		w, c, &dto.AppsResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Apps:      res,
		},
	)
}
