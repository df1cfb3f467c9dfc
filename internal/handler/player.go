package handler

import (
	"net/http"

	"github.com/osse101/InventoryApp_Go/internal/ledger"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/user"
)

// CredentialsRequest carries a player name and password
type CredentialsRequest struct {
	Name     string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Password string `json:"password" validate:"required,max=72"`
}

// PlayerHandler serves account and player display routes
type PlayerHandler struct {
	users  user.Service
	ledger ledger.Service
}

func NewPlayerHandler(users user.Service, ledgerSvc ledger.Service) *PlayerHandler {
	return &PlayerHandler{users: users, ledger: ledgerSvc}
}

// HandleRegister creates a player with the starting balances
// @Summary Register
// @Description Create a player with the starting balances
// @Tags players
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Name and password"
// @Security ApiKeyAuth
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name taken"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/register [post]
func (h *PlayerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	player, err := h.users.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		respondServiceError(w, r, "Register", err)
		return
	}

	logger.FromContext(r.Context()).Info("Player registered", "player", player.Name)
	respondJSON(w, http.StatusCreated, player)
}

// HandleSignIn checks credentials and returns the player
// @Summary Sign in
// @Description Check a player's password
// @Tags players
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Name and password"
// @Security ApiKeyAuth
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/signin [post]
func (h *PlayerHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sign in"); err != nil {
		return
	}

	player, err := h.users.SignIn(r.Context(), req.Name, req.Password)
	if err != nil {
		respondServiceError(w, r, "Sign in", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// HandleGetPlayer returns balances and inventory for display
// @Summary Get player
// @Description Balances and inventory for display
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Security ApiKeyAuth
// @Success 200 {object} domain.PlayerInventory
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players/{name} [get]
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}

	snapshot, err := h.ledger.GetPlayerWithInventory(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, "Get player", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}
