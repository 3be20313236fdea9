package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/profiler"
	"github.com/spf13/cobra"

	"github.com/doitintl/hello/extraction-utility/common"
	"github.com/doitintl/hello/extraction-utility/config"
	"github.com/doitintl/hello/extraction-utility/errorreporting"
	"github.com/doitintl/hello/extraction-utility/extraction/dal"
	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/extraction/service"
	"github.com/doitintl/hello/extraction-utility/framework/connection"
	"github.com/doitintl/hello/extraction-utility/logger"
)

const (
	jobContextName    = "job"
	targetContextName = "target"
)

var (
	configPath   string
	catalogFile  string
	verbose      bool
	withProfiler bool

	rootCmd = &cobra.Command{
		Use:          common.AppName,
		Short:        "Extract BigQuery INFORMATION_SCHEMA metadata into parquet files with a query cost report",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config-path", "", "Path to the INI config file. Falls back to the CONFIG_PATH env var, then "+config.DefaultConfigPath)
	rootCmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML query catalog overriding catalog_file and the built-in catalog")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&withProfiler, "profiler", false, "Start the cloud profiler")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Profiler initialization, best done as early as possible.
	if withProfiler || common.Production {
		if err := profiler.Start(profiler.Config{
			Service: common.AppName,
		}); err != nil {
			log.Printf("main: could not start profiler: %v", err)
		}
	}

	path, err := config.ResolvePath(configPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	clientOptions, err := connection.ClientOptions(ctx, cfg.ServiceAccountFile)
	if err != nil {
		return err
	}

	logging, err := logger.NewLogging(ctx, logger.Options{
		ProjectID:     cfg.JobProjectID,
		CloudLogging:  cfg.CloudLogging,
		Verbose:       verbose,
		Output:        os.Stdout,
		ClientOptions: clientOptions,
	})
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	defer logging.Close()

	l := logging.NewLogger()
	ctx = logger.NewContext(ctx, l)

	l.Infof("config loaded from %s, %d catalog queries", path, len(catalog))
	connection.LogCredentialSource(l, cfg.ServiceAccountFile)

	conn, err := connection.NewConnection(ctx, logging, connection.Options{
		JobProjectID:    cfg.JobProjectID,
		TargetProjectID: cfg.TargetProjectID,
		ClientOptions:   clientOptions,
		WithStorage:     dal.IsGCSPath(cfg.OutputDirectory),
	})
	if err != nil {
		return err
	}

	defer conn.Close()

	var reporter service.ErrorReporter

	if cfg.ErrorReporting {
		r, err := errorreporting.NewReporter(ctx, cfg.JobProjectID, clientOptions...)
		if err != nil {
			l.Warningf("error reporting disabled: %v", err)
		} else {
			defer r.Close()

			reporter = r
		}
	}

	queryHandler := dal.NewQueryHandler()
	jobContext := dal.NewBigqueryContext(logging.Logger, queryHandler, conn.JobBigquery(), jobContextName, cfg.JobLocation())
	targetContext := dal.NewBigqueryContext(logging.Logger, queryHandler, conn.TargetBigquery(), targetContextName, cfg.TargetRegion)

	store := dal.NewFileStore(conn.CloudStorageClient)

	fanOut := service.NewFanOut(
		logging.Logger,
		service.NewExecutor(logging.Logger, cfg.PricePerTiB, cfg.QueryTimeout),
		dal.NewParquetSaver(store),
		reporter,
		[]iface.ExecutionContext{jobContext, targetContext},
		service.Target{
			ProjectID: cfg.TargetProjectID,
			Region:    cfg.TargetRegion,
			OutputDir: cfg.OutputDirectory,
		},
	)

	extraction := service.NewExtractionService(
		logging.Logger,
		catalog,
		fanOut,
		targetContext,
		dal.NewReportWriter(store),
		cfg.DatasetIDs(),
	)

	res, err := extraction.Run(ctx)
	if err != nil {
		l.Errorf("extraction failed: %v", err)
		return err
	}

	l.Infof("extraction finished: %d files saved, cost report %s", len(res.Saved), res.ReportPath)

	return nil
}

// loadCatalog prefers the --catalog flag, then catalog_file, then the built-in catalog.
func loadCatalog(cfg *config.Config) (domain.Catalog, error) {
	path := catalogFile
	if path == "" {
		path = cfg.CatalogFile
	}

	if path == "" {
		return domain.DefaultCatalog(), nil
	}

	return domain.LoadCatalog(path)
}
