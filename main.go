package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"taskmanager/internal/config"
	"taskmanager/internal/handlers"
	"taskmanager/internal/store"
	"taskmanager/internal/taskstore"
)

var (
	cfgFile       string
	port          string
	storageDriver string
	storagePath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "taskmanager",
	Short:        "Task manager with filtering, stats and durable local storage",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print task statistics from stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTaskStore(cmd, func(ts *taskstore.TaskStore) error {
			return printJSON(ts.TaskStats())
		})
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Print every tag in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTaskStore(cmd, func(ts *taskstore.TaskStore) error {
			return printJSON(ts.AllTags())
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage-driver", "", "storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage-path", "", "path of the storage database or file")
	rootCmd.Flags().StringVar(&port, "port", "", "HTTP listen port")

	rootCmd.AddCommand(statsCmd, tagsCmd)
}

// loadConfig reads the config file and environment, then applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("storage-driver") {
		cfg.Storage.Driver = storageDriver
	}
	if cmd.Flags().Changed("storage-path") {
		cfg.Storage.Path = storagePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openTaskStore opens the configured backend and loads persisted state into a new task store.
func openTaskStore(ctx context.Context, cfg *config.Config) (*taskstore.TaskStore, store.Store, error) {
	backend, err := store.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	ts := taskstore.New(backend, taskstore.WithLogger(cfg.Log.NewLogger(os.Stderr)))
	if err := ts.LoadTasks(ctx); err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return ts, backend, nil
}

func withTaskStore(cmd *cobra.Command, fn func(ts *taskstore.TaskStore) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ts, backend, err := openTaskStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	return fn(ts)
}

func serve(ctx context.Context, cfg *config.Config) error {
	ts, backend, err := openTaskStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	if cfg.DemoData {
		if err := ts.LoadDemoData(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	h := handlers.New(ts)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on http://localhost%s (storage: %s)", addr, cfg.Storage.Driver)
	if err := http.ListenAndServe(addr, h.Router()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
