// Package app wires configuration, storage, clients, and services into the
// running application and hosts the MCP server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mverhoef/folio/internal/clients/altme"
	"github.com/mverhoef/folio/internal/clients/coingecko"
	"github.com/mverhoef/folio/internal/clients/fmp"
	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/services/analyzer"
	"github.com/mverhoef/folio/internal/services/networth"
	"github.com/mverhoef/folio/internal/services/tracker"
	"github.com/mverhoef/folio/internal/storage/surrealdb"
)

// App holds all initialized services, clients, and the MCP server.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	Storage         interfaces.StorageManager
	CryptoClient    interfaces.CryptoPriceClient
	ETFClient       interfaces.ETFPriceClient
	MoodClient      interfaces.MarketMoodClient
	TrackerService  interfaces.TrackerService
	AnalyzerService interfaces.AnalyzerService
	NetWorthService interfaces.NetWorthService
	MCPServer       *server.MCPServer
	StartupTime     time.Time

	schedulerCancel context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, clients, services, and the MCP server.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Config resolution: explicit path, FOLIO_CONFIG, binary dir, dev fallback
	if configPath == "" {
		configPath = os.Getenv("FOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "folio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folio.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative data path to binary directory
	if config.Storage.DataPath != "" && !filepath.IsAbs(config.Storage.DataPath) {
		config.Storage.DataPath = filepath.Join(binDir, config.Storage.DataPath)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Resolve API keys
	ctx := context.Background()
	kvStore := storageManager.Internal()

	fmpKey, err := common.ResolveAPIKey(ctx, kvStore, "fmp_api_key", config.Clients.FMP.APIKey)
	if err != nil {
		logger.Warn().Msg("FMP API key not configured - ETF quotes will be unavailable")
	}

	// CoinGecko works without a key; a key just raises the rate limit
	coingeckoKey, _ := common.ResolveAPIKey(ctx, kvStore, "coingecko_api_key", config.Clients.CoinGecko.APIKey)

	// Initialize API clients
	cryptoClient := coingecko.NewClient(coingeckoKey,
		coingecko.WithBaseURL(config.Clients.CoinGecko.BaseURL),
		coingecko.WithLogger(logger),
		coingecko.WithRateLimit(config.Clients.CoinGecko.RateLimit),
		coingecko.WithTimeout(config.Clients.CoinGecko.GetTimeout()),
	)

	etfClient := fmp.NewClient(fmpKey,
		fmp.WithBaseURL(config.Clients.FMP.BaseURL),
		fmp.WithLogger(logger),
		fmp.WithRateLimit(config.Clients.FMP.RateLimit),
		fmp.WithTimeout(config.Clients.FMP.GetTimeout()),
	)

	moodClient := altme.NewClient(
		altme.WithBaseURL(config.Clients.Mood.BaseURL),
		altme.WithLogger(logger),
		altme.WithTimeout(config.Clients.Mood.GetTimeout()),
	)

	// Initialize services
	trackerService := tracker.NewService(storageManager, cryptoClient, etfClient, logger)
	analyzerService := analyzer.NewService(storageManager, cryptoClient, moodClient, logger)
	netWorthService := networth.NewService(storageManager, logger)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"folio",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:          config,
		Logger:          logger,
		Storage:         storageManager,
		CryptoClient:    cryptoClient,
		ETFClient:       etfClient,
		MoodClient:      moodClient,
		TrackerService:  trackerService,
		AnalyzerService: analyzerService,
		NetWorthService: netWorthService,
		MCPServer:       mcpServer,
		StartupTime:     startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// StartPriceScheduler launches the background price refresh goroutine.
func (a *App) StartPriceScheduler() {
	if !a.Config.Refresh.Enabled {
		a.Logger.Info().Msg("Price scheduler disabled by config")
		return
	}
	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	a.schedulerCancel = schedulerCancel
	go startPriceScheduler(schedulerCtx, a.TrackerService, a.Logger, a.Config.Refresh.GetInterval())
}

// Close releases all resources held by the App.
// Shutdown order: cancel scheduler, close storage.
func (a *App) Close() {
	if a.schedulerCancel != nil {
		a.schedulerCancel()
		a.schedulerCancel = nil
	}
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
