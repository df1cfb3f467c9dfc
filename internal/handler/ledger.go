package handler

import (
	"net/http"

	"github.com/osse101/InventoryApp_Go/internal/ledger"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/rates"
)

// TradeRequest names the player and the item for a buy or sell
type TradeRequest struct {
	Player string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Item   string `json:"item" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// GrindRequest names the player being rewarded
type GrindRequest struct {
	Player string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// ExchangeRequest trades gems for gold at the current feed rate. Positive
// Gems buys gems, negative sells them. Clients cannot choose the rate; a
// request carrying one is rejected as an unknown field.
type ExchangeRequest struct {
	Player string `json:"player" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Gems   int    `json:"gems" validate:"ne=0"`
}

// RateResponse is the current gem price
type RateResponse struct {
	GoldPerGem int `json:"gold_per_gem"`
}

// LedgerHandler serves the economy mutations
type LedgerHandler struct {
	ledger ledger.Service
	rates  rates.Provider
}

func NewLedgerHandler(ledgerSvc ledger.Service, provider rates.Provider) *LedgerHandler {
	return &LedgerHandler{ledger: ledgerSvc, rates: provider}
}

// HandleBuy charges the item price and adds one to the player's inventory
// @Summary Buy item
// @Description Pay the catalog price in the item's currency and receive one unit
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Player and item"
// @Security ApiKeyAuth
// @Success 200 {object} domain.Receipt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Not enough money"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/buy [post]
func (h *LedgerHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	receipt, err := h.ledger.BuyItem(r.Context(), req.Player, req.Item)
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// HandleSell removes one unit and refunds half the price
// @Summary Sell item
// @Description Return one unit for half its catalog price, rounded down
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Player and item"
// @Security ApiKeyAuth
// @Success 200 {object} domain.Receipt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Item not owned or wallet full"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/sell [post]
func (h *LedgerHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}

	receipt, err := h.ledger.SellItem(r.Context(), req.Player, req.Item)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// HandleGrind pays a random gold and gem reward
// @Summary Grind
// @Description Award a random amount of gold and gems, capped at the wallet limits
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body GrindRequest true "Player to reward"
// @Security ApiKeyAuth
// @Success 200 {object} domain.GrindResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/grind [post]
func (h *LedgerHandler) HandleGrind(w http.ResponseWriter, r *http.Request) {
	var req GrindRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grind"); err != nil {
		return
	}

	result, err := h.ledger.ProcessGrind(r.Context(), req.Player)
	if err != nil {
		respondServiceError(w, r, "Grind", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleExchange trades gems for gold at the feed rate
// @Summary Exchange gems
// @Description Buy (positive gems) or sell (negative gems) gems for gold at the current feed rate
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Player and gem amount"
// @Security ApiKeyAuth
// @Success 200 {object} domain.ExchangeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Exchange does not balance or wallet full"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/exchange [post]
func (h *LedgerHandler) HandleExchange(w http.ResponseWriter, r *http.Request) {
	var req ExchangeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Exchange"); err != nil {
		return
	}

	rate := h.rates.GetGemPriceInGold(r.Context())
	logger.FromContext(r.Context()).Debug(LogMsgRateFromFeed, "rate", rate)

	result, err := h.ledger.ExchangeGems(r.Context(), req.Player, req.Gems, rate)
	if err != nil {
		respondServiceError(w, r, "Exchange", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetGemRate reports the gold price of one gem
// @Summary Gem rate
// @Description Current gold price of one gem from the rate feed
// @Tags ledger
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RateResponse
// @Router /api/v1/rates/gem [get]
func (h *LedgerHandler) HandleGetGemRate(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RateResponse{GoldPerGem: h.rates.GetGemPriceInGold(r.Context())})
}
