package commands

import (
	"context"
	"fmt"
	"os/signal"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/discord-pagination/pagination-go/internal/bot"
	"github.com/discord-pagination/pagination-go/internal/config"
	"github.com/discord-pagination/pagination-go/internal/pageset"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var configFile, envFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and answer pages commands until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
			defer stop()
			return run(ctx, configFile, envFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path (default: config.yaml in the working directory or a parent)")
	cmd.Flags().StringVarP(&envFile, "env", "e", "", "env file holding "+config.TokenEnv+" (default: .env next to config.yaml)")
	return cmd
}

func run(ctx context.Context, configFile, envFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	token, err := config.LoadToken(envFile, cfg.Dir)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel())

	pages, err := pageset.New(cfg.PagesDir, cfg.PageCacheSize)
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	b, err := bot.New(session, pages, cfg, log)
	if err != nil {
		return err
	}
	remove := b.Register()
	defer remove()

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.WithField("user", r.User.Username).Info("connected")
	})
	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	log.WithFields(logrus.Fields{
		"prefix": cfg.Prefix,
		"pages":  cfg.PagesDir,
	}).Info("pagebot running")
	<-ctx.Done()
	log.Info("shutting down")
	return nil
}
