package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/app"
	"github.com/Nessyi/pumpkin-management/internal/config"
	"github.com/Nessyi/pumpkin-management/internal/platform/bootstrap"
)

func main() {
	guildID := flag.String("guild", "", "guild ID to seed (optional)")
	allow := flag.String("allow", "", "comma separated commands allowed to everyone in the guild")
	deny := flag.String("deny", "", "comma separated commands denied by default in the guild")
	groups := flag.String("group", "", "comma separated ACL groups as name:roleID[:parent], parents first")
	ruleGroups := flag.String("rule-group", "", "comma separated command:group:allow|deny")
	overwrites := flag.String("user-overwrite", "", "comma separated command:userID:allow|deny")
	language := flag.String("language", "", "guild language (en, cs, sk)")
	flag.Parse()

	plan, err := parseSeedPlan(*allow, *deny, *groups, *ruleGroups, *overwrites, *language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid seed flags: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg, "migrate.log")
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	stores, err := app.BuildStores(cfg, logger)
	if err != nil {
		logger.Error("Failed to build stores", slog.Any("error", err))
		os.Exit(1)
	}
	defer stores.Close()

	if err := app.Migrate(ctx, logger, stores.Migrators()...); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		stores.Close()
		os.Exit(1)
	}
	logger.Info("Schema migration completed")

	if *guildID == "" {
		return
	}

	if err := seed(ctx, stores, *guildID, plan); err != nil {
		logger.Error("Seeding failed", slog.String("guild_id", *guildID), slog.Any("error", err))
		stores.Close()
		os.Exit(1)
	}
	logger.Info("Guild seeded", slog.String("guild_id", *guildID))
}
