package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mbarton/javasphinx/internal/adapter"
	"github.com/mbarton/javasphinx/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "javasphinx"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputDirFlagName    = "output-dir"
	cacheDirFlagName     = "cache-dir"
	cacheBackendFlagName = "cache-backend"
	suffixFlagName       = "suffix"
	noTocFlagName        = "no-toc"
	excludeFlagName      = "exclude"
	parallelFlagName     = "parallel"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"
	forceFlagName        = "force"
	updateFlagName       = "update"
	formatFlagName       = "format"

	outputDirKey    = "output.dir"
	suffixKey       = "output.suffix"
	noTocKey        = "output.no_toc"
	forceKey        = "output.force"
	updateKey       = "output.update"
	cacheDirKey     = "cache.dir"
	cacheBackendKey = "cache.backend"
	excludeKey      = "paths.exclude"
	parallelKey     = "build.parallel"
	listFormatKey   = "list.format"

	defaultCacheBackend = adapter.CacheBackendFS
	defaultSuffix       = domain.DefaultSuffix
	defaultParallel     = 1
	defaultListFormat   = "table"

	envPrefix = "JAVASPHINX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".javasphinx.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env", ".env.local"}

var globalLogger *slog.Logger

func init() {
	loadEnvFiles(envFiles...)

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputDirKey, "")
	viper.SetDefault(suffixKey, defaultSuffix)
	viper.SetDefault(noTocKey, false)
	viper.SetDefault(forceKey, false)
	viper.SetDefault(updateKey, false)
	viper.SetDefault(cacheDirKey, "")
	viper.SetDefault(cacheBackendKey, defaultCacheBackend)
	viper.SetDefault(excludeKey, []string{})
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(listFormatKey, defaultListFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("failed to read config file", "path", configFileName, "error", err)
	}
}

// loadEnvFiles loads KEY=VALUE files that exist, skipping missing ones.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			slog.Warn("failed to load env file", "path", path, "error", err)
		}
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
