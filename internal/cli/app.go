package cli

import (
	"fmt"
	"io"

	"polyglot/internal/config"
	"polyglot/internal/console"
	"polyglot/internal/domain"
	"polyglot/internal/handler"
	"polyglot/internal/morph"
	"polyglot/internal/repository/textfile"
	"polyglot/internal/service"
	"polyglot/internal/wordbook"

	"go.uber.org/zap"
)

// App holds everything a command needs
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *wordbook.Database
	Prompter *console.Prompter
	Handler  *handler.Handler
}

// NewApp loads the dictionaries and wires the services
func NewApp(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) (*App, error) {
	reporter := console.NewReporter(out, logger)
	prompter := console.NewPrompter(in, out)

	// Initialize repository and services
	repo := textfile.NewDictionaryRepo(cfg.Dir, logger)
	dictionaries := service.NewDictionaryService(repo, reporter, logger)

	db, err := dictionaries.Load(domain.LanguagePair(cfg.Pair), cfg.SeedSample)
	if err != nil {
		return nil, err
	}

	analyzer, err := newAnalyzer(cfg.FormsFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("Morphology analyzer ready", zap.String("forms", cfg.FormsFile))

	h := handler.NewHandler(
		db,
		dictionaries,
		service.NewMorphologyTranslator(db, analyzer),
		service.NewContextTranslator(db, prompter, reporter),
		service.NewTrainer(db, prompter, reporter),
		out,
		logger,
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Prompter: prompter,
		Handler:  h,
	}, nil
}

func newAnalyzer(formsFile string) (service.Analyzer, error) {
	if formsFile == "" {
		return morph.Identity{}, nil
	}

	table, err := morph.LoadTable(formsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load word forms: %w", err)
	}
	return table, nil
}
