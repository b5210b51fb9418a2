package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/delve-engine/internal/adapters/campaign"
	"github.com/KirkDiggler/delve-engine/internal/config"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	"github.com/KirkDiggler/delve-engine/internal/observability"
	"github.com/KirkDiggler/delve-engine/internal/repositories/sessions"
	"github.com/KirkDiggler/delve-engine/internal/services"
	delveService "github.com/KirkDiggler/delve-engine/internal/services/delve"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	name := flag.String("name", "", "Name for the delve")
	resume := flag.String("resume", "", "Resume an existing session by ID")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, cleanup := buildRepository(cfg, logger)
	defer cleanup()

	roster := campaign.NewRoster(campaign.DefaultParty())
	clock := campaign.NewClock(1000)
	ledger := campaign.NewLedger()

	provider := services.NewProvider(&services.ProviderConfig{
		SessionRepository: repo,
		Seed:              cfg.Delve.Seed,
		Roster:            roster,
		Clock:             clock,
		Ledger:            ledger,
		XP:                roster,
		Logger:            logger,
	})

	ctx := context.Background()

	var sess *entities.DungeonSession
	if *resume != "" {
		sess, err = provider.DelveService.GetSession(ctx, *resume)
		if err != nil {
			log.Fatalf("Failed to resume session %s: %v", *resume, err)
		}
		fmt.Printf("Resuming %s at depth %d, turn %d.\n", sess.Name, sess.Depth, sess.Turn)
	} else {
		sess, err = provider.DelveService.StartSession(ctx, &delveService.StartSessionInput{
			Name:       *name,
			Depth:      cfg.Delve.Depth,
			LairMode:   cfg.Delve.LairMode,
			LightUnits: cfg.Delve.LightUnits,
			Rations:    cfg.Delve.Rations,
			Seed:       cfg.Delve.Seed,
		})
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		fmt.Printf("Delving into %s at depth %d. Type 'help' for commands.\n", sess.Name, sess.Depth)
	}

	r := &repl{
		delve:  provider.DelveService,
		roster: roster,
		clock:  clock,
		ledger: ledger,
		id:     sess.ID,
	}
	r.run(ctx, sess)
}

// buildRepository picks session storage from config, falling back to
// in-memory when the configured backend is unreachable
func buildRepository(cfg *config.Config, logger *zap.Logger) (sessions.Repository, func()) {
	cleanup := func() {}

	switch cfg.Storage.Kind {
	case config.StorageRedis:
		opts, err := redis.ParseURL(cfg.Storage.RedisURL)
		if err != nil {
			logger.Warn("failed to parse Redis URL, using in-memory sessions", zap.Error(err))
			return sessions.NewInMemoryRepository(), cleanup
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("failed to connect to Redis, using in-memory sessions", zap.Error(err))
			_ = client.Close()
			return sessions.NewInMemoryRepository(), cleanup
		}

		logger.Info("using Redis for session storage", zap.String("url", cfg.Storage.RedisURL))
		cleanup = func() { _ = client.Close() }
		return sessions.NewRedisRepository(&sessions.RedisRepoConfig{Client: client}), cleanup

	case config.StorageSQLite:
		repo, err := sessions.NewSQLiteRepository(&sessions.SQLiteRepoConfig{Path: cfg.Storage.SQLitePath})
		if err != nil {
			logger.Warn("failed to open SQLite database, using in-memory sessions", zap.Error(err))
			return sessions.NewInMemoryRepository(), cleanup
		}
		logger.Info("using SQLite for session storage", zap.String("path", cfg.Storage.SQLitePath))
		cleanup = func() { _ = repo.Close() }
		return repo, cleanup

	default:
		logger.Info("using in-memory session storage")
		return sessions.NewInMemoryRepository(), cleanup
	}
}

type repl struct {
	delve  delveService.Service
	roster *campaign.Roster
	clock  *campaign.Clock
	ledger *campaign.Ledger
	id     string
}

func (r *repl) run(ctx context.Context, sess *entities.DungeonSession) {
	printLogTail(sess, 10)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[turn %d | %s] > ", sess.Turn, sess.State)
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			fmt.Printf("Leaving %s. Session %s is saved.\n", sess.Name, r.id)
			return

		case "help", "actions":
			r.printActions(ctx)
			continue

		case "status":
			r.printStatus(sess)
			continue

		case "party":
			r.printParty(ctx)
			continue

		case "log":
			n := 10
			if len(args) > 0 {
				if v, err := strconv.Atoi(args[0]); err == nil {
					n = v
				}
			}
			printLogTail(sess, n)
			continue
		}

		next, err := r.dispatch(ctx, cmd, args)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if next == nil {
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", cmd)
			continue
		}

		if printNewLog(sess, next) == 0 {
			fmt.Println("Nothing happens.")
		}
		sess = next

		if snap, snapErr := r.roster.Snapshot(ctx); snapErr == nil && snap.Wiped() {
			fmt.Println("The party has fallen. This delve is over.")
		}
	}
}

// dispatch maps a REPL command onto a session operation. A nil session
// with nil error means the command was not recognized.
func (r *repl) dispatch(ctx context.Context, cmd string, args []string) (*entities.DungeonSession, error) {
	switch cmd {
	case "explore":
		return r.delve.Explore(ctx, r.id)
	case "search":
		return r.delve.Search(ctx, r.id)
	case "rest":
		return r.delve.Rest(ctx, r.id)

	case "force", "careful", "avoid":
		return r.delve.ResolveObstacle(ctx, r.id, entities.Strategy(cmd))

	case "fight", "flee", "parley", "spell":
		return r.delve.Act(ctx, r.id, entities.CombatAction(cmd))

	case "evade", "ambush", "reveal":
		return r.delve.SurpriseAct(ctx, r.id, entities.SurpriseAction(cmd))

	case "loot":
		return r.delve.Loot(ctx, r.id)

	case "drop":
		if len(args) == 0 {
			return nil, fmt.Errorf("usage: drop <gold>")
		}
		gold, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("usage: drop <gold>")
		}
		return r.delve.DropLoot(ctx, r.id, gold)

	case "return":
		return r.delve.AttemptReturn(ctx, r.id)
	case "continue":
		return r.delve.ContinueReturn(ctx, r.id)
	}

	return nil, nil
}

func (r *repl) printActions(ctx context.Context) {
	actions, err := r.delve.AvailableActions(ctx, r.id)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range actions {
		fmt.Printf("  %-10s %s\n", a.Command, a.Description)
	}
	fmt.Printf("  %-10s %s\n", "status", "Show the session at a glance")
	fmt.Printf("  %-10s %s\n", "party", "Show the party roster")
	fmt.Printf("  %-10s %s\n", "log", "Show recent log entries")
	fmt.Printf("  %-10s %s\n", "quit", "Leave the dungeon session as it stands")
}

func (r *repl) printStatus(sess *entities.DungeonSession) {
	fmt.Printf("%s  (depth %d, %s)\n", sess.Name, sess.Depth, sess.State)
	fmt.Printf("  Turn %d  |  %s, %s\n", sess.Turn, r.clock.Date(), r.clock.TimeOfDay())
	fmt.Printf("  Light: %s, %d turns on the torch, %d spare\n", sess.Lighting(), sess.LightRemaining, sess.LightUnits)
	fmt.Printf("  Rations: %d  |  Carrying: %d gp  |  Banked: %d gp\n", sess.Rations, sess.LootCarried, r.ledger.Balance())
	fmt.Printf("  Rooms explored: %d\n", sess.RoomsExplored)

	if enc := sess.Encounter; enc != nil {
		fmt.Printf("  Facing: %d %s at %d yards (%s), pool %d/%d\n",
			enc.ActiveMonsters(), enc.Name, enc.DistanceYards, enc.Disposition, enc.PoolHP, enc.MaxPoolHP)
	}
	if obs := sess.Obstacle; obs != nil && !obs.Resolved {
		fmt.Printf("  Blocked by: %s (%s)\n", obs.Name, obs.Category)
	}
	if sess.PendingReturn {
		fmt.Printf("  Return interrupted with %d turns of climbing left\n", sess.ReturnTurnsLeft)
	}
}

func (r *repl) printParty(ctx context.Context) {
	snap, err := r.roster.Snapshot(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range snap.Members {
		status := fmt.Sprintf("HP %d/%d", m.CurrentHP, m.MaxHP)
		if !m.Alive() {
			status = "down"
		}
		line := fmt.Sprintf("  %-10s L%d  %-9s AC %d", m.Name, m.Level, status, m.ArmorClass)
		if m.SpellSlots > 0 {
			line += fmt.Sprintf("  slots %d", m.SpellSlots)
		}
		line += fmt.Sprintf("  XP %d", r.roster.Experience(m.ID))
		fmt.Println(line)
	}
}

// printLogTail prints the newest n entries, oldest first
func printLogTail(sess *entities.DungeonSession, n int) {
	for _, entry := range sess.RecentLog(n) {
		fmt.Printf("  %s\n", entry.Message)
	}
}

// printNewLog prints what an action appended and reports how many lines
// that was. The log is bounded, so the previous tail entry is located
// from the end instead of trusting the length difference.
func printNewLog(prev, next *entities.DungeonSession) int {
	start := 0
	if n := len(prev.Log); n > 0 {
		last := prev.Log[n-1]
		for i := len(next.Log) - 1; i >= 0; i-- {
			if next.Log[i] == last {
				start = i + 1
				break
			}
		}
	}
	for _, entry := range next.Log[start:] {
		fmt.Printf("  %s\n", entry.Message)
	}
	return len(next.Log) - start
}
