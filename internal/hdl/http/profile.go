package http

import (
	"errors"
	"net/http"
	"net/url"
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

func RegisterProfileRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("/api/v1/profile/", h.profile)
}

// profile dispatches /api/v1/profile/{identifier}[/friends|/recent-games|/inventory].
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/profile/"), "/")
	parts := strings.Split(rest, "/")

	identifier, err := url.PathUnescape(parts[0])
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	switch {
	case len(parts) == 1:
		h.getProfile(w, r, identifier)
	case len(parts) == 2 && parts[1] == "friends":
		h.getFriends(w, r, identifier)
	case len(parts) == 2 && parts[1] == "recent-games":
		h.getRecentGames(w, r, identifier)
	case len(parts) == 2 && parts[1] == "inventory":
		h.getInventory(w, r, identifier)
	default:
		h.notFound(w, r)
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, identifier string) {
	s, c := time.Now(), http.StatusOK
	const op = "profile.getProfile.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	if err := validation.Identifier(identifier); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.GetProfile(r.Context(), identifier)
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
		w, c, &dto.ProfileResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Profile:   res,
		},
	)
}

func (h *Handler) getFriends(w http.ResponseWriter, r *http.Request, identifier string) {
	s, c := time.Now(), http.StatusOK
	const op = "profile.getFriends.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	if err := validation.Identifier(identifier); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.GetFriends(r.Context(), identifier)
	if err != nil && (errors.Is(err, ctrl.ErrNotFound) || errors.Is(err, ctrl.ErrAPIKeyRequired)) {
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
		w, c, &dto.FriendsResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Friends:   res,
		},
	)
}

func (h *Handler) getRecentGames(w http.ResponseWriter, r *http.Request, identifier string) {
	s, c := time.Now(), http.StatusOK
	const op = "profile.getRecentGames.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	if err := validation.Identifier(identifier); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.GetRecentGames(r.Context(), identifier)
	if err != nil && (errors.Is(err, ctrl.ErrNotFound) || errors.Is(err, ctrl.ErrAPIKeyRequired)) {
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
		w, c, &dto.RecentGamesResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Games:     res,
		},
	)
}

// contextIDsParam reads context_id values; repeated params and comma
// lists are both accepted.
func contextIDsParam(r *http.Request) []string {
	var ids []string
	for _, raw := range r.URL.Query()["context_id"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		ids = []string{config.DefaultContextID}
	}
	return ids
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request, identifier string) {
	s, c := time.Now(), http.StatusOK
	const op = "profile.getInventory.hdl"
	defer func() {
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	if r.Method != http.MethodGet {
		c = http.StatusMethodNotAllowed
		utils.ErrResponse(w, c, hdl.ErrMethodNotAllowed)
		return
	}

	if err := validation.Identifier(identifier); err != nil {
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

	contextIDs := contextIDsParam(r)
	if err := validation.ContextIDs(contextIDs); err != nil {
		c = http.StatusBadRequest
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.GetInventory(r.Context(), identifier, appID, contextIDs)
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
		w, c, &dto.InventoryResponse{
			Success:   true,
			Timestamp: utils.Timestamp(),
			Inventory: res,
		},
	)
}
