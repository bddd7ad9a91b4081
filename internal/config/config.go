package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/tdex-network/ghost-wallet/internal/infrastructure/biometric"
	"github.com/tdex-network/ghost-wallet/internal/infrastructure/keygen"
	demonetwork "github.com/tdex-network/ghost-wallet/internal/infrastructure/network/demo"
	badgerstore "github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/badger"
	boltstore "github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/bolt"
	inmemorystore "github.com/tdex-network/ghost-wallet/internal/infrastructure/securestore/inmemory"
	"github.com/tdex-network/ghost-wallet/pkg/wallet"
)

const (
	// DatadirKey is the local data directory to store the wallet record and
	// the statistics
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// StoreTypeKey is used to switch the secure store backend between those
	// supported
	StoreTypeKey = "STORE_TYPE"
	// NetworkLatencyKey is the simulated round-trip time of network requests
	NetworkLatencyKey = "NETWORK_LATENCY"
	// NetworkRateLimitKey is the max number of network requests per second, 0
	// disables throttling
	NetworkRateLimitKey = "NETWORK_RATE_LIMIT"
	// ProposalSyncKey defines how fetched proposals are reconciled with the
	// local ones, either merge or replace
	ProposalSyncKey = "PROPOSAL_SYNC"
	// AllowRepeatVotesKey lets the same account vote more than once on a
	// proposal
	AllowRepeatVotesKey = "ALLOW_REPEAT_VOTES"
	// KeyTypeKey is the type of the wallet key pair, either hex or secp256k1
	KeyTypeKey = "KEY_TYPE"
	// ScryptNKey is the scrypt cost used to derive the passkey encryption key
	ScryptNKey = "SCRYPT_N"
	// BiometricSupportedKey tells whether the device has enrolled biometric
	// hardware
	BiometricSupportedKey = "BIOMETRIC_SUPPORTED"
	// BiometricResultKey is the outcome of every biometric prompt
	BiometricResultKey = "BIOMETRIC_RESULT"
	// EnableStatsKey enables the periodic dump of memory and operation
	// statistics
	EnableStatsKey = "ENABLE_STATS"
	// StatsIntervalKey defines interval for printing basic statistics
	StatsIntervalKey = "STATS_INTERVAL"

	StoreTypeMemory = "memory"
	StoreTypeBadger = "badger"
	StoreTypeBolt   = "bolt"

	DbLocation    = "db"
	StatsLocation = "stats"
)

var (
	vip            *viper.Viper
	defaultDatadir = btcutil.AppDataDir("ghost-wallet", false)

	supportedStoreTypes = map[string]struct{}{
		StoreTypeMemory: {},
		StoreTypeBadger: {},
		StoreTypeBolt:   {},
	}
	supportedKeyTypes = map[string]struct{}{
		keygen.TypeRandomHex: {},
		keygen.TypeSecp256k1: {},
	}
)

// InitConfig loads the configuration from the environment (GHOST_ prefix).
// The given overrides take precedence over environment and defaults.
func InitConfig(overrides map[string]interface{}) error {
	vip = viper.New()
	vip.SetEnvPrefix("GHOST")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(StoreTypeKey, StoreTypeBadger)
	vip.SetDefault(NetworkLatencyKey, demonetwork.DefaultLatency)
	vip.SetDefault(NetworkRateLimitKey, demonetwork.DefaultRateLimit)
	vip.SetDefault(ProposalSyncKey, application.ProposalSyncMerge)
	vip.SetDefault(AllowRepeatVotesKey, false)
	vip.SetDefault(KeyTypeKey, keygen.TypeRandomHex)
	vip.SetDefault(ScryptNKey, wallet.DefaultScryptN)
	vip.SetDefault(BiometricSupportedKey, false)
	vip.SetDefault(BiometricResultKey, true)
	vip.SetDefault(EnableStatsKey, false)
	vip.SetDefault(StatsIntervalKey, 600)

	for key, value := range overrides {
		vip.Set(key, value)
	}

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetSecureStore returns the configured secure store. Persistent ones live
// in the db subdirectory of the datadir.
func GetSecureStore() (ports.SecureStore, error) {
	dbDir := filepath.Join(GetDatadir(), DbLocation)
	switch GetString(StoreTypeKey) {
	case StoreTypeMemory:
		return inmemorystore.NewSecureStore(), nil
	case StoreTypeBolt:
		return boltstore.NewSecureStore(dbDir)
	default:
		return badgerstore.NewSecureStore(dbDir, nil)
	}
}

// GetNetwork returns the demo network with the configured latency and rate
// limit.
func GetNetwork() ports.Network {
	return demonetwork.NewService(
		GetDuration(NetworkLatencyKey), GetInt(NetworkRateLimitKey),
	)
}

// GetBiometric returns a biometric service answering as configured.
func GetBiometric() (ports.Biometric, error) {
	return biometric.NewService(biometric.NewStaticPlatform(
		GetBool(BiometricSupportedKey), GetBool(BiometricResultKey),
	))
}

// GetApplicationConfig returns the configuration of a session using the
// given store and network.
func GetApplicationConfig(
	store ports.SecureStore, network ports.Network,
) (application.Config, error) {
	keyGenerator, err := keygen.NewKeyGenerator(GetString(KeyTypeKey))
	if err != nil {
		return application.Config{}, err
	}
	return application.Config{
		SecureStore:      store,
		Network:          network,
		KeyGenerator:     keyGenerator,
		ScryptN:          GetInt(ScryptNKey),
		ProposalSync:     GetString(ProposalSyncKey),
		AllowRepeatVotes: GetBool(AllowRepeatVotesKey),
	}, nil
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	logLevel := GetInt(LogLevelKey)
	if logLevel < 0 || logLevel > 6 {
		return fmt.Errorf("log level must be in range [0, 6]")
	}

	storeType := GetString(StoreTypeKey)
	if _, ok := supportedStoreTypes[storeType]; !ok {
		return fmt.Errorf(
			"store type must be one of '%s', '%s' or '%s'",
			StoreTypeMemory, StoreTypeBadger, StoreTypeBolt,
		)
	}

	if GetDuration(NetworkLatencyKey) < 0 {
		return fmt.Errorf("network latency must not be negative")
	}
	if GetInt(NetworkRateLimitKey) < 0 {
		return fmt.Errorf("network rate limit must not be negative")
	}

	proposalSync := GetString(ProposalSyncKey)
	if _, ok := application.SupportedProposalSync[proposalSync]; !ok {
		return fmt.Errorf(
			"proposal sync must be either '%s' or '%s'",
			application.ProposalSyncMerge, application.ProposalSyncReplace,
		)
	}

	keyType := GetString(KeyTypeKey)
	if _, ok := supportedKeyTypes[keyType]; !ok {
		return fmt.Errorf(
			"key type must be either '%s' or '%s'",
			keygen.TypeRandomHex, keygen.TypeSecp256k1,
		)
	}

	scryptN := GetInt(ScryptNKey)
	if scryptN < 1<<10 || scryptN&(scryptN-1) != 0 {
		return fmt.Errorf("scrypt cost must be a power of 2 not lower than 1024")
	}

	if GetBool(EnableStatsKey) && GetInt(StatsIntervalKey) <= 0 {
		return fmt.Errorf("stats interval must be a positive number of seconds")
	}
	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if GetString(StoreTypeKey) != StoreTypeMemory {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation)); err != nil {
			return err
		}
	}

	if GetBool(EnableStatsKey) {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, StatsLocation)); err != nil {
			return err
		}
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
