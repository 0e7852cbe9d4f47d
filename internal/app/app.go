package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/sports-challenge/internal/config"
	"github.com/riskibarqy/sports-challenge/internal/domain/draft"
	"github.com/riskibarqy/sports-challenge/internal/domain/league"
	"github.com/riskibarqy/sports-challenge/internal/domain/leaguemap"
	domainsource "github.com/riskibarqy/sports-challenge/internal/domain/source"
	"github.com/riskibarqy/sports-challenge/internal/domain/scoring"
	"github.com/riskibarqy/sports-challenge/internal/domain/sport"
	"github.com/riskibarqy/sports-challenge/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-challenge/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sports-challenge/internal/infrastructure/source"
	"github.com/riskibarqy/sports-challenge/internal/interfaces/httpapi"
	"github.com/riskibarqy/sports-challenge/internal/platform/dburl"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/platform/resilience"
	"github.com/riskibarqy/sports-challenge/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Server bundles the HTTP server with the background pieces that share its
// lifetime.
type Server struct {
	HTTP      *http.Server
	Seeder    *usecase.SeedService
	Scheduler *SeedScheduler

	closers []func() error
}

// Close stops the scheduler and releases the store connection.
func (s *Server) Close() error {
	var firstErr error
	if s.Scheduler != nil {
		if err := s.Scheduler.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type stores struct {
	leagues league.Repository
	sports  sport.Repository
	picks   draft.Repository
	scores  scoring.Repository
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	srv := &Server{}

	repos, closeStore, err := openStores(cfg, logger)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		srv.closers = append(srv.closers, closeStore)
	}

	sources, err := newSourceRouter(ctx, cfg, logger)
	if err != nil {
		_ = srv.Close()
		return nil, err
	}

	mapper, err := newLeagueMapper(cfg)
	if err != nil {
		_ = srv.Close()
		return nil, err
	}

	pipelineSvc := usecase.NewPipelineService(sources, mapper, usecase.PipelineConfig{
		FetchWorkers: cfg.SourceFetchWorkers,
	}, logger)
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.sports, repos.picks, repos.scores)
	seedSvc := usecase.NewSeedService(pipelineSvc, repos.leagues, repos.sports, repos.picks, repos.scores, usecase.SeedConfig{
		LeagueName:        cfg.SeedLeagueName,
		LeagueSeason:      cfg.SeedLeagueSeason,
		LeagueDescription: cfg.SeedLeagueDescription,
		CreatedBy:         cfg.ServiceName,
	}, logger)
	srv.Seeder = seedSvc

	if cfg.SeedInterval > 0 {
		scheduler, err := NewSeedScheduler(seedSvc, cfg.SeedInterval, logger)
		if err != nil {
			_ = srv.Close()
			return nil, err
		}
		srv.Scheduler = scheduler
	}

	handler := httpapi.NewHandler(pipelineSvc, leagueSvc, seedSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	srv.HTTP = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return srv, nil
}

func openStores(cfg config.Config, logger *logging.Logger) (stores, func() error, error) {
	if cfg.StorageBackend != config.StoragePostgres {
		leagues := memory.NewLeagueRepository()
		return stores{
			leagues: leagues,
			sports:  memory.NewSportRepository(),
			picks:   memory.NewDraftRepository(),
			scores:  memory.NewScoringRepository(leagues),
		}, nil, nil
	}

	db, err := openPostgres(cfg)
	if err != nil {
		return stores{}, nil, err
	}
	logger.Info("postgres store connected", "db", dburl.Name(cfg.DBURL))

	return stores{
		leagues: postgres.NewLeagueRepository(db),
		sports:  postgres.NewSportRepository(db),
		picks:   postgres.NewDraftRepository(db),
		scores:  postgres.NewScoringRepository(db),
	}, db.Close, nil
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := dburl.Normalize(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dburl.Name(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(dburl.FormatQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	otelsql.ReportDBStatsMetrics(db.DB)

	return db, nil
}

func newSourceRouter(ctx context.Context, cfg config.Config, logger *logging.Logger) (*source.Router, error) {
	uris := map[domainsource.Key]string{
		domainsource.KeyDraft:    cfg.SourceDraftURI,
		domainsource.KeyPoints:   cfg.SourcePointsURI,
		domainsource.KeySchedule: cfg.SourceScheduleURI,
	}

	routerCfg := source.RouterConfig{
		URIs: uris,
		File: source.NewFileFetcher(cfg.SourceBaseDir),
		HTTP: source.NewHTTPFetcher(source.HTTPFetcherConfig{
			Timeout: cfg.SourceHTTPTimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SourceCircuitEnabled,
				FailureThreshold: cfg.SourceCircuitFailureCount,
				OpenTimeout:      cfg.SourceCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SourceCircuitHalfOpenMaxReq,
			},
		}),
		Logger: logger,
	}

	// The AWS config chain is only loaded when an export lives in a bucket.
	if usesS3(uris) {
		s3Fetcher, err := source.NewS3Fetcher(ctx, source.S3FetcherConfig{
			Region:          cfg.SourceS3Region,
			Endpoint:        cfg.SourceS3Endpoint,
			AccessKeyID:     cfg.SourceS3AccessKeyID,
			SecretAccessKey: cfg.SourceS3SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("build s3 source: %w", err)
		}
		routerCfg.S3 = s3Fetcher
	}

	return source.NewRouter(routerCfg), nil
}

func usesS3(uris map[domainsource.Key]string) bool {
	for _, uri := range uris {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(uri)), "s3://") {
			return true
		}
	}
	return false
}

func newLeagueMapper(cfg config.Config) (*leaguemap.Mapper, error) {
	strategy, err := leaguemap.ParseMatchStrategy(cfg.LeagueMatchStrategy)
	if err != nil {
		return nil, err
	}
	if cfg.LeagueTablePath == "" {
		return leaguemap.Default().WithStrategy(strategy), nil
	}

	mapper, err := leaguemap.LoadTable(cfg.LeagueTablePath, strategy)
	if err != nil {
		return nil, fmt.Errorf("load league table: %w", err)
	}
	return mapper, nil
}
