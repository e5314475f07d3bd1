// Package node wires the slash indicator components into a runnable application.
package node

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/go-slashindicator/api/httpserver"
	"github.com/spacemeshos/go-slashindicator/codec"
	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/config"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/log"
	"github.com/spacemeshos/go-slashindicator/metrics"
	"github.com/spacemeshos/go-slashindicator/signing"
	"github.com/spacemeshos/go-slashindicator/slashing"
	"github.com/spacemeshos/go-slashindicator/sql"
	"github.com/spacemeshos/go-slashindicator/sql/indicators"
	"github.com/spacemeshos/go-slashindicator/sql/slashes"
	"github.com/spacemeshos/go-slashindicator/staking"
)

const dbFile = "state.sql"

// Logger names.
const (
	SlashingLogger = "slashing"
	EventsLogger   = "events"
	StorageLogger  = "storage"
	APILogger      = "api"
)

// Option to modify an App instance.
type Option func(app *App)

// WithLog enables logger for an App.
func WithLog(logger *zap.Logger) Option {
	return func(app *App) {
		app.log = logger
	}
}

// WithConfig overwrites default App config.
func WithConfig(conf *config.Config) Option {
	return func(app *App) {
		app.Config = conf
	}
}

// WithClock overwrites the clock used for slash timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(app *App) {
		app.clock = clock
	}
}

// New creates an instance of the slash indicator app.
func New(opts ...Option) *App {
	defaultConfig := config.DefaultConfig()
	app := &App{
		Config:  &defaultConfig,
		log:     zap.NewNop(),
		clock:   clockwork.NewRealClock(),
		loggers: make(map[string]*zap.AtomicLevel),
		started: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// App is the cli app singleton.
type App struct {
	Config *config.Config

	log      *zap.Logger
	clock    clockwork.Clock
	loggers  map[string]*zap.AtomicLevel
	fileLock *flock.Flock

	db         *sql.Database
	reporter   *events.Reporter
	validators *staking.Set
	pool       *staking.Pool
	slasher    *slashing.Slasher
	service    *Service
	api        *httpserver.Server
	metrics    *metrics.Server

	started chan struct{}
}

// Lock locks the app for exclusive use. It returns an error if the data directory is already locked.
func (app *App) Lock() error {
	lockFile := app.Config.FileLock()
	lockDir := filepath.Dir(lockFile)
	if _, err := os.Stat(lockDir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(lockDir, 0o700); err != nil {
			return fmt.Errorf("creating dir %s for lock %s: %w", lockDir, lockFile, err)
		}
	}
	fl := flock.New(lockFile)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("flock %s: %w", lockFile, err)
	} else if !locked {
		return fmt.Errorf("only one slasher instance should be running (locking file %s)", fl.Path())
	}
	app.fileLock = fl
	return nil
}

// Unlock unlocks the app. It is a no-op if the app is not locked.
func (app *App) Unlock() {
	if app.fileLock == nil {
		return
	}
	if err := app.fileLock.Unlock(); err != nil {
		app.log.Error("failed to unlock file",
			zap.String("path", app.fileLock.Path()),
			zap.Error(err),
		)
	}
	app.fileLock = nil
}

func (app *App) addLogger(name, level string) *zap.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		app.log.Warn("invalid log level, using parent level", zap.String("module", name), zap.Error(err))
		return app.log.Named(name)
	}
	app.loggers[name] = &lvl
	return app.log.Named(name).WithOptions(zap.IncreaseLevel(lvl))
}

// SetLogLevel updates the log level of an existing logger.
func (app *App) SetLogLevel(name, loglevel string) error {
	lvl, ok := app.loggers[name]
	if !ok {
		return fmt.Errorf("cannot find logger %v", name)
	}
	if err := lvl.UnmarshalText([]byte(loglevel)); err != nil {
		return fmt.Errorf("unmarshal text: %w", err)
	}
	return nil
}

// Initialize opens the database, creates all components and restores the last checkpoint.
func (app *App) Initialize() error {
	if err := app.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := os.MkdirAll(app.Config.DataDir, 0o700); err != nil {
		return fmt.Errorf("ensure data dir exists: %w", err)
	}
	app.log.Info("initializing", zap.Object("config", app.Config))

	db, err := sql.Open("file:"+filepath.Join(app.Config.DataDir, dbFile),
		sql.WithLogger(app.addLogger(StorageLogger, app.Config.Logging.Storage)),
		sql.WithConnections(app.Config.DatabaseConnections),
		sql.WithLatencyMetering(app.Config.DatabaseLatencyMetering),
	)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	app.db = db

	app.reporter, err = events.New(
		events.WithLogger(app.addLogger(EventsLogger, app.Config.Logging.Events)),
		events.WithBufferSize(app.Config.Events.BufferSize),
		events.WithHistorySize(app.Config.Events.RecentSlashes),
	)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	slashingLogger := app.addLogger(SlashingLogger, app.Config.Logging.Slashing)
	app.validators, err = staking.NewSet(slashingLogger, app.Config.Genesis.Validators)
	if err != nil {
		return fmt.Errorf("genesis validators: %w", err)
	}
	app.pool = staking.NewPool(slashingLogger, types.Amount(app.Config.Genesis.RewardPool))

	oracle, err := signing.NewProofVerifier(signing.WithVerifierPrefix([]byte(app.Config.ChainID)))
	if err != nil {
		return fmt.Errorf("create proof verifier: %w", err)
	}
	app.slasher, err = slashing.New(app.validators, app.pool, oracle, app.reporter,
		slashing.WithLogger(slashingLogger),
		slashing.WithClock(app.clock),
		slashing.WithConfig(app.Config.Slashing),
	)
	if err != nil {
		return fmt.Errorf("create slasher: %w", err)
	}
	snapshot, err := indicators.Load(app.db)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		app.log.Info("no slashing checkpoint, starting from genesis")
	case err != nil:
		return fmt.Errorf("load checkpoint: %w", err)
	default:
		if err := app.slasher.Restore(snapshot); err != nil {
			return fmt.Errorf("restore checkpoint: %w", err)
		}
	}
	app.service = newService(slashingLogger, app.db, app.slasher, app.reporter, app.Config.Slashing.CompactInterval)

	app.api = httpserver.New(app.Config.API.Listen, app.service, app.service, app.validators, app.pool,
		httpserver.WithLogger(app.addLogger(APILogger, app.Config.Logging.API)),
		httpserver.WithTimeout(app.Config.API.Timeout),
		httpserver.WithCorsOrigins(app.Config.API.CorsOrigins),
	)
	if app.Config.Metrics.Enable {
		app.metrics = metrics.NewServer(app.Config.Metrics.Listen, app.log.Named("metrics"))
	}
	return nil
}

// Started is closed once all services are listening.
func (app *App) Started() <-chan struct{} {
	return app.started
}

// APIAddress returns the address of the json api. Valid after Started is closed.
func (app *App) APIAddress() string {
	return app.api.BoundAddress()
}

// Start runs all services until ctx is canceled or one of them fails.
func (app *App) Start(ctx context.Context) error {
	slashSub, err := app.reporter.SubscribeSlashes()
	if err != nil {
		return fmt.Errorf("subscribe to slashes: %w", err)
	}
	packageSub, err := app.reporter.SubscribeSlashPackages()
	if err != nil {
		return errors.Join(fmt.Errorf("subscribe to slash packages: %w", err), slashSub.Close())
	}
	paramSub, err := app.reporter.SubscribeParamChanges()
	if err != nil {
		return errors.Join(fmt.Errorf("subscribe to param changes: %w", err), slashSub.Close(), packageSub.Close())
	}
	compactSub, err := app.reporter.SubscribeCompactions()
	if err != nil {
		return errors.Join(fmt.Errorf("subscribe to compactions: %w", err),
			slashSub.Close(), packageSub.Close(), paramSub.Close())
	}
	if err := app.api.Listen(); err != nil {
		return errors.Join(err, slashSub.Close(), packageSub.Close(), paramSub.Close(), compactSub.Close())
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.recordHistory(ctx, slashSub)
	})
	eg.Go(func() error {
		return app.relayPackages(ctx, packageSub)
	})
	eg.Go(func() error {
		return app.watchParams(ctx, paramSub)
	})
	eg.Go(func() error {
		return app.watchCompactions(ctx, compactSub)
	})
	eg.Go(func() error {
		return app.api.Run(ctx)
	})
	if app.metrics != nil {
		eg.Go(func() error {
			return app.metrics.Run(ctx)
		})
	}
	app.log.Info("app started", zap.String("api", app.APIAddress()))
	close(app.started)
	return eg.Wait()
}

func (app *App) recordHistory(ctx context.Context, sub events.Subscription) error {
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Out():
			if !ok {
				return nil
			}
			slash := ev.(events.EventSlash)
			if err := slashes.Add(app.db, &slash); err != nil {
				app.log.Error("failed to record slash", zap.Object("slash", &slash), zap.Error(err))
				continue
			}
			recordedSlashes.WithLabelValues(string(slash.Kind)).Inc()
		}
	}
}

// relayPackages hands slash packages to the cross network relayer.
// A standalone node has no relayer and only logs them.
func (app *App) relayPackages(ctx context.Context, sub events.Subscription) error {
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Out():
			if !ok {
				return nil
			}
			payload := ev.(events.EventSlashPackage).Payload
			var pkg events.SlashPackage
			if err := codec.Decode(payload, &pkg); err != nil {
				app.log.Error("malformed slash package", zap.Binary("payload", payload), zap.Error(err))
				continue
			}
			relayedPackages.Inc()
			app.log.Info("relaying slash package",
				log.ZShortStringer("validator", pkg.Validator),
				zap.Uint64("height", pkg.Height),
				zap.Uint64("timestamp", pkg.Timestamp),
				zap.Int("size", len(payload)),
			)
		}
	}
}

func (app *App) watchParams(ctx context.Context, sub events.Subscription) error {
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Out():
			if !ok {
				return nil
			}
			change := ev.(events.EventParamChange)
			paramChanges.WithLabelValues(change.Key).Inc()
			app.log.Info("slashing param changed",
				zap.String("key", change.Key),
				zap.Uint64("value", change.Value),
			)
		}
	}
}

func (app *App) watchCompactions(ctx context.Context, sub events.Subscription) error {
	defer sub.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Out():
			if !ok {
				return nil
			}
			compacted := ev.(events.EventCompacted)
			compactions.Inc()
			compactedIndicators.Add(float64(compacted.Removed))
			app.log.Debug("indicators compacted",
				zap.Int("removed", compacted.Removed),
				zap.Int("remaining", compacted.Remaining),
			)
		}
	}
}

// Cleanup checkpoints the state and closes all resources.
func (app *App) Cleanup(ctx context.Context) error {
	var errs []error
	if app.service != nil {
		if err := app.service.Checkpoint(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if app.reporter != nil {
		if err := app.reporter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close reporter: %w", err))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	app.log.Info("app cleanup completed")
	return errors.Join(errs...)
}
