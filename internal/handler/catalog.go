package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/InventoryApp_Go/internal/catalog"
	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
)

// CatalogHandler serves read-only catalog routes
type CatalogHandler struct {
	catalog catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// HandleListItems returns every item in insertion order
// @Summary List items
// @Description Every catalog item in insertion order
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} []domain.Item
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		respondServiceError(w, r, "List items", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// HandleGetItem looks an item up by exact name. A miss answers 404 with
// close names the caller may have meant.
// @Summary Get item
// @Description Look an item up by exact name; a miss lists close names
// @Tags catalog
// @Produce json
// @Param name path string true "Item name"
// @Param limit query int false "Maximum suggestions on a miss"
// @Security ApiKeyAuth
// @Success 200 {object} domain.Item
// @Failure 404 {object} ItemNotFoundResponse "Unknown item with suggestions"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/catalog/{name} [get]
func (h *CatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	limit, ok := GetLimitParam(r, w, catalog.DefaultSuggestionLimit)
	if !ok {
		return
	}

	item, err := h.catalog.GetItem(r.Context(), name)
	if err == nil {
		respondJSON(w, http.StatusOK, item)
		return
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		respondServiceError(w, r, "Get item", err)
		return
	}

	suggestions, sErr := h.catalog.Suggest(r.Context(), name, limit)
	if sErr != nil {
		logger.FromContext(r.Context()).Warn(LogMsgSuggestFailed, "error", sErr)
		suggestions = []string{}
	}
	respondJSON(w, http.StatusNotFound, ItemNotFoundResponse{
		Error:       ErrMsgItemNotFoundError,
		Suggestions: suggestions,
	})
}
