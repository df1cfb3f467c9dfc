package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// validateName rejects empty or whitespace-only names
func validateName(arg, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf(ErrMsgEmptyNameFmt, arg, domain.ErrInvalidInput)
	}
	return nil
}

// goldForGems returns the gold moved by trading gemsDelta gems at goldRate.
// Gold moves opposite to gems. A product larger than any gold balance is
// saturated to one past MaxGold so it can't wrap; TryAdd then rejects it
// with the right direction.
func goldForGems(gemsDelta, goldRate int) int64 {
	units := int64(gemsDelta)
	if units < 0 {
		units = -units
	}
	limit := int64(domain.MaxGold) + 1
	if units < 0 || units > limit || int64(goldRate) > limit/units {
		if gemsDelta > 0 {
			return -limit
		}
		return limit
	}
	return -int64(gemsDelta) * int64(goldRate)
}

func validateExchange(gemsDelta, goldRate int) error {
	if gemsDelta == 0 || goldRate <= 0 {
		return fmt.Errorf(ErrMsgInvalidExchangeFmt, gemsDelta, goldRate, domain.ErrInvalidInput)
	}
	return nil
}

// lockPlayer loads the player row under lock, mapping absence to ErrPlayerNotFound
func lockPlayer(ctx context.Context, tx repository.LedgerTx, name string) (*domain.Player, error) {
	player, err := tx.GetPlayerForUpdate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf(ErrMsgPlayerNotFoundFmt, name, domain.ErrPlayerNotFound)
	}
	return player, nil
}

// requireAdmin checks that the acting player exists and is an administrator
func requireAdmin(ctx context.Context, tx repository.LedgerTx, adminName string) error {
	actor, err := tx.GetPlayerByName(ctx, adminName)
	if err != nil {
		return fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if actor == nil {
		return fmt.Errorf(ErrMsgActorNotFoundFmt, adminName, domain.ErrAccessDenied)
	}
	if !actor.IsAdmin {
		return fmt.Errorf(ErrMsgNotAdminFmt, adminName, domain.ErrAccessDenied)
	}
	return nil
}
