package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/rafin/routine-genius/internal/config"
	"github.com/rafin/routine-genius/internal/export"
	"github.com/rafin/routine-genius/internal/feedio"
	"github.com/rafin/routine-genius/internal/routine"
	"github.com/rafin/routine-genius/internal/store"
	"github.com/rafin/routine-genius/pkg/logger"
	"github.com/rafin/routine-genius/pkg/model"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the YAML config")
	limit := flag.Int("limit", 5, "maximum number of routines to print (0 for all)")
	confirm := flag.Bool("confirm", false, "save the first routine into the confirmed store")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, *limit, *confirm, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, limit int, confirm bool, log *zap.Logger) error {
	sections, err := feedio.LoadSections(cfg.FeedFile, log)
	if err != nil {
		return err
	}
	catalog := model.BuildCatalog(sections)

	searchCfg := cfg.BuildSearchConfig()
	if len(searchCfg.Courses) == 0 {
		return fmt.Errorf("no courses selected in config")
	}
	for _, code := range searchCfg.Courses {
		if !catalog.Has(code) {
			return fmt.Errorf("course %s not found in feed", code)
		}
	}

	routines := routine.NewGenerator(catalog, searchCfg, log).Generate()
	fmt.Printf("Found %d routine(s) for %d course(s)\n\n", len(routines), len(searchCfg.Courses))
	if len(routines) == 0 {
		return nil
	}

	shown := len(routines)
	if limit > 0 && limit < shown {
		shown = limit
	}
	for i := 0; i < shown; i++ {
		printRoutine(os.Stdout, i+1, routines[i])
	}
	if shown < len(routines) {
		fmt.Printf("... and %d more\n\n", len(routines)-shown)
	}

	first := routines[0]
	if cfg.ExportCSV != "" {
		if err := export.ExportRoutine(first, cfg.ExportCSV); err != nil {
			return err
		}
		fmt.Println("Exported CSV to: " + cfg.ExportCSV)
	}
	if cfg.ExportPDF != "" {
		if err := export.WritePDF(first, "Class Routine", cfg.ExportPDF); err != nil {
			return err
		}
		fmt.Println("Exported PDF to: " + cfg.ExportPDF)
	}

	if confirm {
		st, err := store.New(cfg.ConfirmedDir)
		if err != nil {
			return err
		}
		entry, err := st.Confirm(first)
		if err != nil {
			return err
		}
		fmt.Println("Confirmed routine: " + entry.ID)
	}

	return nil
}

func printRoutine(w io.Writer, n int, r model.Routine) {
	fmt.Fprintf(w, "Routine #%d (%d day(s))\n", n, r.DistinctDays())
	for _, s := range r {
		fmt.Fprintf(w, "  %s [%s] %s  seats %s\n", s.CourseCode, s.Label, s.FacultyLine(), export.SeatStatus(s))
		for _, t := range s.Intervals {
			fmt.Fprintf(w, "    %s %s - %s @ %s\n",
				t.Day, model.FormatMinutes(t.StartMinute), model.FormatMinutes(t.EndMinute), t.Room)
		}
	}
	fmt.Fprintln(w)
}
