package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-persona-keeper/internal/adapter"
	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/keyvault"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/service"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
	"github.com/MKhiriev/go-persona-keeper/internal/workers"
	"github.com/MKhiriev/go-persona-keeper/models"
)

type App struct {
	cfg    config.StructuredConfig
	ui     UI
	logger *logger.Logger

	prefsDB     *store.DB
	prefs       store.Preferences
	vault       keyvault.KeyVault
	creds       credential.Store
	sessions    *session.Manager
	biometric   auth.Biometric
	coordinator auth.Coordinator
	aliases     adapter.AliasClient
}

// Status summarizes the local security settings.
type Status struct {
	PinSet           bool
	BiometricEnabled bool
	AutoLockMinutes  int
	Session          session.State
	LockedOut        bool
	LockoutSeconds   int
}

// NewApp opens the preferences database and builds the unlock stack. The
// record store is opened only after a successful unlock.
func NewApp(ctx context.Context, cfg config.StructuredConfig, ui UI, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectPreferences(ctx, cfg.Storage.Prefs, log)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	prefs := store.NewPreferences(db)

	vault := keyvault.NewFromConfig(cfg.Vault, prefs, log)
	fieldKey, err := vault.GetOrCreateKey(ctx, keyvault.PurposeFieldEncryption)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("field encryption key: %w", err)
	}
	sealed := store.NewSealedPreferences(prefs, fieldKey)

	creds, err := credential.NewStore(ctx, sealed, vault, cfg.Security, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("credential store: %w", err)
	}

	sessions := session.NewManager(sealed, creds, session.SystemClock(), log)
	biometric := auth.Unsupported()

	aliases, err := adapter.NewHTTPAliasClient(cfg.Adapter, log)
	if err != nil && !errors.Is(err, adapter.ErrNotConfigured) {
		db.Close()
		return nil, fmt.Errorf("alias client: %w", err)
	}

	return &App{
		cfg:         cfg,
		ui:          ui,
		logger:      log,
		prefsDB:     db,
		prefs:       prefs,
		vault:       vault,
		creds:       creds,
		sessions:    sessions,
		biometric:   biometric,
		coordinator: auth.NewCoordinator(creds, sessions, sessions, biometric, log),
		aliases:     aliases,
	}, nil
}

// Run alternates between the unlock screen and the identity screen until
// the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		locked, err := a.runUnlocked(ctx)
		if err != nil || !locked {
			return err
		}
		a.logger.Info().Msg("app locked, returning to unlock screen")
	}
}

func (a *App) runUnlocked(ctx context.Context) (bool, error) {
	if err := a.unlock(ctx); err != nil {
		return false, err
	}

	var locked bool
	err := a.withServices(ctx, func(svcs *service.Services) error {
		job := service.NewAutoLockJob(a.sessions, a.coordinator, a.ui.NotifyLocked, a.logger)
		w := workers.NewWorkers(workers.NewAutoLockWorker(job, a.cfg.Workers.AutoLockInterval))
		w.Start(ctx)
		defer w.Stop()

		var err error
		locked, err = a.ui.Identities(ctx, svcs.IdentityService, a.sessions, a.coordinator)
		return err
	})
	return locked, err
}

// unlock returns at once for an already active session, otherwise it runs
// the unlock UI.
func (a *App) unlock(ctx context.Context) error {
	if _, ok := a.coordinator.Activate(ctx).(auth.StateAuthenticated); ok {
		return a.sessions.Touch(ctx)
	}
	return a.ui.Unlock(ctx, a.coordinator)
}

// withServices opens the record store for the duration of fn.
func (a *App) withServices(ctx context.Context, fn func(svcs *service.Services) error) error {
	passphrase, err := a.vault.GetDatabasePassphrase(ctx)
	if err != nil {
		return fmt.Errorf("database passphrase: %w", err)
	}

	records, err := store.OpenRecordStore(ctx, a.cfg.Storage.Records, passphrase, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := records.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.withServices").Msg("error closing record store")
		}
	}()

	return fn(service.NewServices(records, a.cfg, a.logger))
}

// SetPin sets a new PIN. Replacing an existing PIN requires unlocking first.
func (a *App) SetPin(ctx context.Context) error {
	hasPin, err := a.creds.HasPin(ctx)
	if err != nil {
		return err
	}
	if hasPin {
		if err = a.unlock(ctx); err != nil {
			return err
		}
	}
	return a.ui.SetupPin(ctx, a.creds)
}

func (a *App) ClearPin(ctx context.Context) error {
	if err := a.unlock(ctx); err != nil {
		return err
	}
	if err := a.creds.ClearPin(ctx); err != nil {
		return err
	}
	return a.sessions.EndSession(ctx)
}

func (a *App) SetBiometric(ctx context.Context, enabled bool) error {
	if enabled && a.biometric.Capability() != auth.CapabilityAvailable {
		return ErrBiometricUnavailable
	}
	if err := a.unlock(ctx); err != nil {
		return err
	}
	return a.creds.SetBiometricEnabled(ctx, enabled)
}

func (a *App) SetAutoLock(ctx context.Context, minutes int) error {
	if err := a.unlock(ctx); err != nil {
		return err
	}
	return a.creds.SetAutoLockMinutes(ctx, minutes)
}

// Export writes an encrypted backup of the record store to w.
func (a *App) Export(ctx context.Context, w io.Writer, password []byte) error {
	defer crypto.Wipe(password)

	if err := a.unlock(ctx); err != nil {
		return err
	}
	return a.withServices(ctx, func(svcs *service.Services) error {
		return svcs.BackupService.Export(ctx, w, password)
	})
}

// Import replaces every identity with the content of the backup read from r.
func (a *App) Import(ctx context.Context, r io.Reader, password []byte) error {
	defer crypto.Wipe(password)

	if err := a.unlock(ctx); err != nil {
		return err
	}
	return a.withServices(ctx, func(svcs *service.Services) error {
		return svcs.BackupService.Import(ctx, r, password)
	})
}

// Aliases lists the forwarding aliases of the configured account.
func (a *App) Aliases(ctx context.Context) ([]models.Alias, error) {
	if a.aliases == nil {
		return nil, adapter.ErrNotConfigured
	}

	switch res := a.aliases.FetchAliases(ctx).(type) {
	case adapter.AliasesFetched:
		return res.Aliases, nil
	case adapter.AliasesFailed:
		return nil, fmt.Errorf("%w: %s (status %d)", ErrAliasFetch, res.Message, res.StatusCode)
	default:
		return nil, ErrAliasFetch
	}
}

func (a *App) Status(ctx context.Context) (Status, error) {
	hasPin, err := a.creds.HasPin(ctx)
	if err != nil {
		return Status{}, err
	}
	state, err := a.sessions.State(ctx)
	if err != nil {
		return Status{}, err
	}
	remaining, err := a.sessions.LockoutRemaining(ctx)
	if err != nil {
		return Status{}, err
	}

	return Status{
		PinSet:           hasPin,
		BiometricEnabled: a.creds.BiometricEnabled(),
		AutoLockMinutes:  a.creds.AutoLockMinutes(),
		Session:          state,
		LockedOut:        remaining > 0,
		LockoutSeconds:   remaining,
	}, nil
}

// Reset destroys every key, credential, session record and the record
// store file. It needs no unlock: it is the way out of a forgotten PIN.
func (a *App) Reset(ctx context.Context) error {
	var errs []error
	if err := a.vault.ClearAllKeys(ctx); err != nil {
		errs = append(errs, err)
	}
	for _, prefix := range []string{credential.Prefix, session.Prefix} {
		if err := a.prefs.DeletePrefix(ctx, prefix); err != nil {
			errs = append(errs, err)
		}
	}
	if err := os.Remove(a.cfg.Storage.Records.Path); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		a.logger.Err(err).Str("func", "App.Reset").Msg("reset incomplete")
		return err
	}
	a.logger.Warn().Msg("all local data destroyed")
	return nil
}

func (a *App) Close() error {
	return a.prefsDB.Close()
}
