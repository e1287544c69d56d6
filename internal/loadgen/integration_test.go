package loadgen_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/client"
	"github.com/Totarae/shortener-ops/internal/config"
	"github.com/Totarae/shortener-ops/internal/handlers"
	"github.com/Totarae/shortener-ops/internal/loadgen"
	"github.com/Totarae/shortener-ops/internal/router"
	"github.com/Totarae/shortener-ops/internal/service"
	"github.com/Totarae/shortener-ops/internal/storage"
	"github.com/Totarae/shortener-ops/internal/target"
	"github.com/Totarae/shortener-ops/internal/tokens"
)

// Прогон против настоящего узла в памяти.
func TestRun_AgainstDevnode(t *testing.T) {
	store, err := storage.NewURLStore("")
	require.NoError(t, err)
	svc := service.NewMappingService(nil, store, zap.NewNop(), config.StorageMemory)
	srv := httptest.NewServer(router.NewRouter(handlers.NewHandler(svc, zap.NewNop()), zap.NewNop()))
	defer srv.Close()

	rnd := tokens.NewRand(123)
	sel := target.NewFleetSelector([]string{strings.TrimPrefix(srv.URL, "http://")}, 0, rnd)
	d := client.NewHTTPDispatcher(srv.Client(), client.Options{Timeout: 2 * time.Second})

	g := loadgen.New(d, sel, rnd, zap.NewNop(), loadgen.Options{
		TotalRequests:    200,
		ResolveThreshold: loadgen.DefaultResolveThreshold,
	})
	report := g.Run(context.Background())

	assert.Equal(t, 200, report.Attempted)
	assert.Equal(t, 200, report.SuccessfulCreates+report.SuccessfulResolves)
	assert.Greater(t, report.SuccessfulResolves, 0)

	for _, m := range g.Registry().Snapshot() {
		long, ok := store.Get(m.Short)
		require.True(t, ok, m.Short)
		if ok {
			assert.True(t, strings.HasPrefix(long, tokens.LongScheme))
		}
	}
}

// Узел недоступен: ни одна попытка не успешна, прогон всё равно завершается.
func TestRun_NodeDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	rnd := tokens.NewRand(5)
	g := loadgen.New(
		client.NewHTTPDispatcher(nil, client.Options{Timeout: time.Second}),
		target.NewFleetSelector([]string{host}, 0, rnd),
		rnd, zap.NewNop(),
		loadgen.Options{TotalRequests: 20, ResolveThreshold: loadgen.DefaultResolveThreshold},
	)
	report := g.Run(context.Background())

	assert.Equal(t, 20, report.Attempted)
	assert.Equal(t, 0, report.SuccessfulCreates)
	assert.Equal(t, 0, report.SuccessfulResolves)
}
