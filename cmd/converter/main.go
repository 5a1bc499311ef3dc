// Package main is the entry point for the converter CLI and gRPC server
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/cmd/converter/client"
	"github.com/KirkDiggler/rpg-converter/internal/config"
)

var (
	envFile string
	cfg     *config.Config

	// Flag overrides, applied only when set
	logLevel  string
	logFormat string
	userID    string
	outputDir string
	workers   int
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-converter",
	Short: "Convert NPC stat blocks into Daggerheart adversaries",
	Long: `rpg-converter turns stat-block images, FoundryVTT D&D 5e actor exports and
SRD monsters into FoundryVTT Daggerheart adversary and feature documents.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "dotenv file to load (default ./.env when present)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&userID, "user-id", "", "Foundry user id written to lastModifiedBy")
	flags.StringVarP(&outputDir, "output", "o", "", "directory that receives the import files")
	flags.IntVar(&workers, "workers", 0, "sources converted concurrently")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address for the OCR cache")

	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(actorsCmd)
	rootCmd.AddCommand(monstersCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment, applies flag overrides and installs the
// default logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	loaded, err := config.Load(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}
	if flags.Changed("user-id") {
		loaded.UserID = userID
	}
	if flags.Changed("output") {
		loaded.OutputDir = outputDir
	}
	if flags.Changed("workers") {
		loaded.Workers = workers
	}
	if flags.Changed("redis-addr") {
		loaded.Redis.Addr = redisAddr
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	logger, err := loaded.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg = loaded
	client.SetDefaultAddr(cfg.GRPCAddr)
	return nil
}
