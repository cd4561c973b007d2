package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/factories"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/server"
	"github.com/dineflow/backoffice/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Serves the restaurant back-office dashboard",
	Long:  `backoffice serves a restaurant back-office dashboard: orders, menu, inventory, staff and tables, held in memory and exposed over an HTTP API, with every mutation mirrored to an audit event stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := serve(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func serve(cfg *models.Config) error {
	out, err := auditOutput(cfg)
	if err != nil {
		return fmt.Errorf("error setting up audit output: %w", err)
	}
	recorder := audit.NewRecorder(out)
	defer func() {
		if err := recorder.Close(); err != nil {
			log.Printf("Error closing audit recorder: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var vitals telemetry.Sink = telemetry.LogSink{}
	if cfg.Database.URL != "" {
		sink, err := telemetry.NewPostgresSink(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("error setting up telemetry sink: %w", err)
		}
		defer sink.Close()
		vitals = sink
	}

	st := factories.SeedStore(cfg, time.Now())
	log.Printf("Seeded store (%s): %d orders, %d dishes, %d inventory items, %d staff, %d tables",
		cfg.SeedMode, len(st.Orders), len(st.Dishes), len(st.Inventory), len(st.Staff), len(st.Tables))

	return server.New(st, recorder, vitals).Run(ctx, cfg.ListenAddr)
}

func auditOutput(cfg *models.Config) (audit.OutputDestination, error) {
	switch cfg.AuditOutput {
	case "kafka":
		return audit.NewKafkaOutput(cfg)
	case "file":
		return audit.NewFileOutput(cfg.AuditPath), nil
	default:
		return &audit.ConsoleOutput{}, nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.backoffice.yaml)")

	rootCmd.Flags().String("listen-addr", ":8080", "Address the dashboard API listens on")
	rootCmd.Flags().String("seed-mode", "fixture", "Seed data source: fixture or random")
	rootCmd.Flags().Int64("seed", 42, "Random seed for generated collections")
	rootCmd.Flags().Int("initial-orders", 20, "Generated order count in random seed mode")
	rootCmd.Flags().Int("initial-dishes", 30, "Generated dish count in random seed mode")
	rootCmd.Flags().Int("initial-inventory", 40, "Generated inventory item count in random seed mode")
	rootCmd.Flags().Int("initial-staff", 12, "Generated staff count in random seed mode")
	rootCmd.Flags().Int("initial-tables", 16, "Generated table count in random seed mode")
	rootCmd.Flags().String("audit-output", "console", "Audit event destination: console, file or kafka")
	rootCmd.Flags().String("audit-path", "audit", "Directory for file audit output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic-prefix", "backoffice", "Prefix for Kafka audit topics")

	bindFlags(rootCmd)
}

// bindFlags maps dashed flag names onto the underscored config keys so a
// flag, an env var and a config file entry all land on the same field.
func bindFlags(cmd *cobra.Command) {
	for flag, key := range map[string]string{
		"listen-addr":        "listen_addr",
		"seed-mode":          "seed_mode",
		"seed":               "seed",
		"initial-orders":     "initial_orders",
		"initial-dishes":     "initial_dishes",
		"initial-inventory":  "initial_inventory",
		"initial-staff":      "initial_staff",
		"initial-tables":     "initial_tables",
		"audit-output":       "audit_output",
		"audit-path":         "audit_path",
		"kafka-broker-list":  "kafka_broker_list",
		"kafka-topic-prefix": "kafka_topic_prefix",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".backoffice")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
