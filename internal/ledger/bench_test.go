package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryApp_Go/internal/database/memory"
	"github.com/osse101/InventoryApp_Go/internal/domain"
)

func benchService(b *testing.B, players int, opts ...Option) Service {
	b.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	tx, err := store.Catalog().BeginTx(ctx)
	require.NoError(b, err)
	require.NoError(b, tx.InsertItem(ctx, &domain.Item{Name: "Cord", Price: 1, Currency: domain.CurrencyGold}))
	require.NoError(b, tx.Commit(ctx))

	for i := 0; i < players; i++ {
		p := &domain.Player{Name: fmt.Sprintf("bench-%d", i), Gold: 1 << 30}
		require.NoError(b, store.Users().CreatePlayer(ctx, p))
	}
	return NewService(store.Ledger(), opts...)
}

func BenchmarkBuySell(b *testing.B) {
	svc := benchService(b, 1)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.BuyItem(ctx, "bench-0", "Cord"); err != nil {
			b.Fatal(err)
		}
		if _, err := svc.SellItem(ctx, "bench-0", "Cord"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGrind_ParallelPlayers(b *testing.B) {
	const players = 64
	svc := benchService(b, players, WithRandomSource(NewSeededSource(1)))
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if _, err := svc.ProcessGrind(ctx, fmt.Sprintf("bench-%d", i%players)); err != nil {
				b.Error(err)
				return
			}
			i++
		}
	})
}
