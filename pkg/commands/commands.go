package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mood",
		Short: base.Wrap80("Mood journaling on the command line. Record one mood a day, look back at how it went."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false, "Output as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addDelete(topLevel)
	addUndo(topLevel)
	addStats(topLevel)
	addSeed(topLevel)
	addExport(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// session is everything a command needs to talk to the journal.
type session struct {
	config  store.Config
	disk    *store.Disk
	journal *journal.Journal
	logger  *log.Logger
}

// open loads config, the on-disk store and the journal.
func open(cmd *cobra.Command) (*session, error) {
	output.Out = cmd.OutOrStdout()

	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "mood"})
	if lvl, err := log.ParseLevel(cfg.LogLevel()); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.WarnLevel)
		logger.Warn("unknown log level, using warn", "level", cfg.LogLevel())
	}

	disk, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened store", "path", disk.BasePath(), "key", cfg.Key())

	j := journal.New(disk, journal.WithLogger(logger), journal.WithKey(cfg.Key()))
	j.Load()

	return &session{
		config:  cfg,
		disk:    disk,
		journal: j,
		logger:  logger,
	}, nil
}
