package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/delve-engine/internal/config"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	"github.com/KirkDiggler/delve-engine/internal/repositories/sessions"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	sessionID := flag.String("id", "", "Session ID to inspect")
	list := flag.Bool("list", false, "List all active sessions")
	tail := flag.Int("tail", 15, "Log entries to show with -id")
	flag.Parse()

	if *sessionID == "" && !*list {
		log.Fatal("Provide -id <session-id> or -list")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}
	defer cleanup()

	ctx := context.Background()

	if *list {
		active, err := repo.ListActive(ctx)
		if err != nil {
			log.Fatalf("Failed to list sessions: %v", err)
		}
		if len(active) == 0 {
			fmt.Println("No active sessions.")
			return
		}
		for _, s := range active {
			fmt.Printf("%s  %-24s depth %d  turn %3d  %-10s last active %s\n",
				s.ID, s.Name, s.Depth, s.Turn, s.State, s.LastActive.Format(time.RFC3339))
		}
		return
	}

	sess, err := repo.Get(ctx, *sessionID)
	if err != nil {
		log.Fatalf("Failed to get session: %v", err)
	}
	dump(sess, *tail)
}

// openRepository connects to the configured backend. Unlike the game
// binary there is no in-memory fallback; a dead backend is the thing
// being debugged.
func openRepository(cfg *config.Config) (sessions.Repository, func(), error) {
	cleanup := func() {}

	switch cfg.Storage.Kind {
	case config.StorageRedis:
		opts, err := redis.ParseURL(cfg.Storage.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		cleanup = func() { _ = client.Close() }
		return sessions.NewRedisRepository(&sessions.RedisRepoConfig{Client: client}), cleanup, nil

	case config.StorageSQLite:
		repo, err := sessions.NewSQLiteRepository(&sessions.SQLiteRepoConfig{Path: cfg.Storage.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = repo.Close() }
		return repo, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("storage kind %q holds no sessions to inspect; set DELVE_STORAGE to redis or sqlite", cfg.Storage.Kind)
	}
}

func dump(sess *entities.DungeonSession, tail int) {
	fmt.Printf("=== Session %s ===\n", sess.ID)
	fmt.Printf("Name: %s\n", sess.Name)
	fmt.Printf("State: %s\n", sess.State)
	fmt.Printf("Depth: %d\n", sess.Depth)
	fmt.Printf("Turn: %d\n", sess.Turn)
	fmt.Printf("Light: %s (%d turns burning, %d spare)\n", sess.Lighting(), sess.LightRemaining, sess.LightUnits)
	fmt.Printf("Rations: %d\n", sess.Rations)
	fmt.Printf("Rooms explored: %d\n", sess.RoomsExplored)
	fmt.Printf("Loot carried: %d gp\n", sess.LootCarried)
	if sess.LairMode {
		fmt.Println("Lair mode: on")
	}
	if sess.MonstersAlerted {
		fmt.Println("Monsters alerted: yes")
	}
	if sess.PendingReturn {
		fmt.Printf("Pending return: %d turns left\n", sess.ReturnTurnsLeft)
	}
	if sess.Seed != 0 {
		fmt.Printf("Seed: %d\n", sess.Seed)
	}
	fmt.Printf("Created: %s\n", sess.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Last active: %s\n", sess.LastActive.Format(time.RFC3339))

	if obs := sess.Obstacle; obs != nil {
		fmt.Printf("\nObstacle: %s (%s)\n", obs.Name, obs.Category)
		fmt.Printf("  Outcome: %s after %d attempts\n", obs.Outcome, obs.Attempts)
	}

	if enc := sess.Encounter; enc != nil {
		fmt.Printf("\nEncounter: %d %s (%s)\n", enc.Quantity, enc.Name, enc.Disposition)
		fmt.Printf("  Pool: %d/%d, %d still fighting\n", enc.PoolHP, enc.MaxPoolHP, enc.ActiveMonsters())
		fmt.Printf("  Distance: %d yards\n", enc.DistanceYards)
		fmt.Printf("  Round: %d\n", enc.Round)
		if len(enc.MoraleFired) > 0 {
			fmt.Printf("  Morale triggers spent:")
			for _, trigger := range entities.MoraleTriggerOrder {
				if enc.FiredTrigger(trigger) {
					fmt.Printf(" %s", trigger)
				}
			}
			fmt.Println()
		}
	}

	if entries := sess.RecentLog(tail); len(entries) > 0 {
		fmt.Printf("\nLog (last %d):\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("  [%3d %-8s] %s\n", entry.Turn, entry.Kind, entry.Message)
		}
	}
}
