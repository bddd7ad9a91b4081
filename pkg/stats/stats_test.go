package stats_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ghost-wallet/pkg/stats"
)

func TestDumpPrometheusDefaults(t *testing.T) {
	stats.ObserveOperation("create_wallet", time.Now(), nil)
	stats.ObserveOperation("create_wallet", time.Now(), errors.New("failed"))

	statsFile := filepath.Join(t.TempDir(), "stats")
	err := stats.DumpPrometheusDefaults(statsFile)
	require.NoError(t, err)

	content, err := os.ReadFile(statsFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "ghost_session_operations_total")
	require.Contains(t, string(content), "create_wallet")
}

func TestEnableMemoryStatistics(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats")
	ctx, cancel := context.WithCancel(context.Background())

	done := stats.EnableMemoryStatistics(ctx, 10*time.Millisecond, statsFile)
	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	info, err := os.Stat(statsFile)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}
