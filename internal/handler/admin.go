package handler

import (
	"net/http"

	"github.com/osse101/InventoryApp_Go/internal/catalog"
	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/ledger"
	"github.com/osse101/InventoryApp_Go/internal/user"
)

// SetBalanceRequest overwrites a player's balances. Out-of-range values are clamped.
type SetBalanceRequest struct {
	Admin    string `json:"admin" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Password string `json:"password" validate:"required,max=72"`
	Player   string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Gold     int    `json:"gold"`
	Gems     int    `json:"gems"`
}

// CreateItemRequest adds a catalog item. Price is bounded by the storage column.
type CreateItemRequest struct {
	Admin       string `json:"admin" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Password    string `json:"password" validate:"required,max=72"`
	Name        string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"max=500"`
	Price       int    `json:"price" validate:"min=0,max=2147483647"`
	Currency    string `json:"currency" validate:"required,currency"`
}

// GrantAdminRequest promotes Target. The acting admin re-enters their password.
type GrantAdminRequest struct {
	Admin    string `json:"admin" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Password string `json:"password" validate:"required,max=72"`
	Target   string `json:"target" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// AdminHandler serves administrator routes. Every request re-verifies the
// acting admin's password; the admin flag itself is checked by the services
// inside their transactions.
type AdminHandler struct {
	users   user.Service
	ledger  ledger.Service
	catalog catalog.Service
}

func NewAdminHandler(users user.Service, ledgerSvc ledger.Service, catalogSvc catalog.Service) *AdminHandler {
	return &AdminHandler{users: users, ledger: ledgerSvc, catalog: catalogSvc}
}

// HandleSetBalance overwrites a player's gold and gems
// @Summary Set balance
// @Description Overwrite a player's balances; values outside the wallet range are clamped
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetBalanceRequest true "New balances"
// @Security ApiKeyAuth
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong admin password"
// @Failure 403 {object} ErrorResponse "Not an administrator"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/balance [post]
func (h *AdminHandler) HandleSetBalance(w http.ResponseWriter, r *http.Request) {
	var req SetBalanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set balance"); err != nil {
		return
	}

	if !h.authenticate(w, r, req.Admin, req.Password, "Set balance") {
		return
	}

	player, err := h.ledger.SetBalance(r.Context(), req.Admin, req.Player, req.Gold, req.Gems)
	if err != nil {
		respondServiceError(w, r, "Set balance", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// HandleCreateItem adds an item to the catalog
// @Summary Create item
// @Description Add a catalog item with a price in gold or gems
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item details"
// @Security ApiKeyAuth
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong admin password"
// @Failure 403 {object} ErrorResponse "Not an administrator"
// @Failure 409 {object} ErrorResponse "Name taken"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/items [post]
func (h *AdminHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	if !h.authenticate(w, r, req.Admin, req.Password, "Create item") {
		return
	}

	// already checked by the currency tag
	currency, _ := domain.ParseCurrency(req.Currency)

	item, err := h.catalog.CreateItem(r.Context(), req.Admin, catalog.CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    currency,
	})
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// HandleGrantAdmin gives another player administrator rights
// @Summary Grant admin
// @Description Promote a player to administrator
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantAdminRequest true "Admin credentials and target"
// @Security ApiKeyAuth
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong admin password"
// @Failure 403 {object} ErrorResponse "Not an administrator"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/grant [post]
func (h *AdminHandler) HandleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	var req GrantAdminRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant admin"); err != nil {
		return
	}

	if err := h.users.GrantAdmin(r.Context(), req.Admin, req.Password, req.Target); err != nil {
		respondServiceError(w, r, "Grant admin", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAdminGranted})
}

// authenticate checks the acting admin's credentials and writes the error
// response when they don't match.
func (h *AdminHandler) authenticate(w http.ResponseWriter, r *http.Request, name, password, opName string) bool {
	if _, err := h.users.SignIn(r.Context(), name, password); err != nil {
		respondServiceError(w, r, opName, err)
		return false
	}
	return true
}
