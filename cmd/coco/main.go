package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cocosearch/coco"
	"github.com/cocosearch/coco/inmem"
	"github.com/cocosearch/coco/json"
	cocoslog "github.com/cocosearch/coco/slog"
	"github.com/cocosearch/coco/sqlite"
	"github.com/cocosearch/coco/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Reads the dataset config. Defaults to the YAML/JSON loader.
	ConfigLoader coco.ConfigLoader

	// SQLite database holding the dataset snapshot, when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigLoader: yaml.NewConfigLoader(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coco"),
		kong.Description("Search the COCO captioned-image dataset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set COCO_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewDatasetStore(m.DB)
	}

	// JSON files are read on import or when there is no snapshot to use.
	if cli.Import || deps.Store == nil {
		cfg, err := m.ConfigLoader.LoadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set COCO_CONFIG or --config to point at the dataset config\n")
			return err
		}
		deps.Loader = cocoslog.NewLoggingLoader(json.NewLoader(cfg), logger)
	} else {
		deps.Loader = cocoslog.NewLoggingLoader(deps.Store, logger)
	}

	ds, err := deps.Loader.LoadDataset(ctx)
	if err != nil {
		return err
	}

	if cli.Import {
		cmd := &ImportCmd{}
		if err := cmd.Run(deps, ds); err != nil {
			return err
		}
	}

	idx, err := inmem.NewIndex(ds)
	if err != nil {
		return err
	}
	deps.Index = cocoslog.NewLoggingIndex(idx, logger)

	cmd := &QueryCmd{
		Caption:       cli.Caption,
		ImageID:       cli.ImageID,
		Categories:    cli.Categories,
		CategoryNames: cli.CategoryNames,
		Preview:       cli.Preview,
		Limit:         cli.Limit,
	}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config        string  `short:"C" default:"config.json" env:"COCO_CONFIG" help:"Path to the dataset config file"`
	Caption       *string `short:"c" placeholder:"TEXT" help:"Search for term in captions"`
	ImageID       *int    `short:"i" name:"image-id" aliases:"image_id" placeholder:"ID" help:"Return data for a specific image ID"`
	Categories    bool    `help:"List categories as (id, super category, name)"`
	CategoryNames bool    `help:"List category names"`
	Preview       int     `default:"10" help:"Number of image IDs printed before caption matches"`
	Limit         int     `default:"0" help:"Maximum number of caption matches to print (0 prints all)"`
	DB            string  `env:"COCO_DB" help:"Load the dataset from a SQLite snapshot"`
	Import        bool    `help:"Read the dataset from JSON and save it as a snapshot in --db"`
	Verbose       bool    `short:"v" help:"Enable debug logging"`
}

// Validate checks flag combinations that Kong cannot express.
func (c *CLI) Validate() error {
	if c.Import && c.DB == "" {
		return fmt.Errorf("--import requires --db")
	}
	if c.Caption == nil && c.ImageID == nil && !c.Categories && !c.CategoryNames && !c.Import {
		return fmt.Errorf("nothing to do: pass --caption, --image-id, --categories, --category-names or --import")
	}
	if c.Preview < 0 {
		return fmt.Errorf("--preview must not be negative")
	}
	if c.Limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	return nil
}
