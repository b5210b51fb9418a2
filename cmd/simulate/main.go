package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/delve-engine/internal/adapters/campaign"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	"github.com/KirkDiggler/delve-engine/internal/services"
	delveService "github.com/KirkDiggler/delve-engine/internal/services/delve"
)

// maxSteps bounds one run so a stuck policy cannot spin forever
const maxSteps = 1000

// runStats collects what one delve produced
type runStats struct {
	GoldBanked int
	Rooms      int
	Turns      int
	XP         int
	Surfaced   bool
	Wiped      bool
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	runs := flag.Int("runs", 100, "Number of delves to simulate")
	depth := flag.Int("depth", 1, "Dungeon depth for every run")
	seed := flag.Int64("seed", 1, "Base seed; run n uses seed+n")
	lair := flag.Bool("lair", false, "Placed encounters guard their full hoard")
	light := flag.Int("light", 6, "Spare light units per run")
	rations := flag.Int("rations", 5, "Rations per run")
	target := flag.Int("target", 500, "Carried gold that sends the party home")
	verbose := flag.Bool("v", false, "Print one line per run")
	flag.Parse()

	var total runStats
	surfaced, wiped := 0, 0

	for i := 0; i < *runs; i++ {
		stats, err := simulate(i, *depth, *seed+int64(i), *lair, *light, *rations, *target)
		if err != nil {
			log.Fatalf("Run %d failed: %v", i, err)
		}

		total.GoldBanked += stats.GoldBanked
		total.Rooms += stats.Rooms
		total.Turns += stats.Turns
		total.XP += stats.XP
		if stats.Surfaced {
			surfaced++
		}
		if stats.Wiped {
			wiped++
		}

		if *verbose {
			switch {
			case stats.Wiped:
				fmt.Printf("run %3d: wiped after %d rooms\n", i, stats.Rooms)
			case stats.Surfaced:
				fmt.Printf("run %3d: surfaced with %d gp after %d turns\n", i, stats.GoldBanked, stats.Turns)
			default:
				fmt.Printf("run %3d: abandoned after %d steps\n", i, maxSteps)
			}
		}
	}

	n := float64(*runs)
	fmt.Println("=== Delve Simulation ===")
	fmt.Printf("Runs:         %d at depth %d (base seed %d)\n", *runs, *depth, *seed)
	fmt.Printf("Surfaced:     %d (%.1f%%)\n", surfaced, float64(surfaced)/n*100)
	fmt.Printf("Party wiped:  %d (%.1f%%)\n", wiped, float64(wiped)/n*100)
	fmt.Printf("Average haul: %.1f gp banked\n", float64(total.GoldBanked)/n)
	fmt.Printf("Average trip: %.1f rooms over %.1f turns\n", float64(total.Rooms)/n, float64(total.Turns)/n)
	fmt.Printf("Average XP:   %.1f per run\n", float64(total.XP)/n)
}

// simulate plays one whole delve with a fixed policy: explore until the
// haul or the supplies say go home, fight what fights back, run when
// half the party is down.
func simulate(run, depth int, seed int64, lair bool, light, rations, target int) (*runStats, error) {
	ctx := context.Background()

	roster := campaign.NewRoster(campaign.DefaultParty())
	clock := campaign.NewClock(1000)
	ledger := campaign.NewLedger()

	provider := services.NewProvider(&services.ProviderConfig{
		Seed:   seed,
		Roster: roster,
		Clock:  clock,
		Ledger: ledger,
		XP:     roster,
	})
	delve := provider.DelveService

	sess, err := delve.StartSession(ctx, &delveService.StartSessionInput{
		Name:       fmt.Sprintf("Run %d", run),
		Depth:      depth,
		LairMode:   lair,
		LightUnits: light,
		Rations:    rations,
		Seed:       seed,
	})
	if err != nil {
		return nil, err
	}

	stats := &runStats{}
	for step := 0; step < maxSteps; step++ {
		snap, err := roster.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		if snap.Wiped() {
			stats.Wiped = true
			break
		}

		next, returning, err := act(ctx, delve, sess, snap, target)
		if err != nil {
			return nil, err
		}

		if next.Turn > stats.Turns {
			stats.Turns = next.Turn
		}
		if next.RoomsExplored > stats.Rooms {
			stats.Rooms = next.RoomsExplored
		}

		if returning && next.IsIdle() && !next.PendingReturn && next.LootCarried == 0 && next.Turn == 0 {
			stats.Surfaced = true
			sess = next
			break
		}

		// An overloaded party refuses to climb; shed half the haul.
		if returning && next.IsIdle() && next.Turn == sess.Turn && next.LootCarried > 0 {
			next, err = delve.DropLoot(ctx, sess.ID, next.LootCarried/2+1)
			if err != nil {
				return nil, err
			}
		}

		sess = next
	}

	stats.GoldBanked = ledger.Balance()
	snap, err := roster.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range snap.Members {
		stats.XP += roster.Experience(m.ID)
	}

	return stats, nil
}

// act picks and performs one action for the session's current state.
// The second return reports whether the action was a return attempt.
func act(ctx context.Context, delve delveService.Service, sess *entities.DungeonSession, snap *entities.PartySnapshot, target int) (*entities.DungeonSession, bool, error) {
	switch sess.State {
	case entities.SessionStateIdle:
		if sess.LootCarried >= target || sess.Rations <= 1 || sess.InDarkness() ||
			(sess.LightUnits == 0 && sess.LightRemaining <= 2) {
			next, err := delve.AttemptReturn(ctx, sess.ID)
			return next, true, err
		}
		next, err := delve.Explore(ctx, sess.ID)
		return next, false, err

	case entities.SessionStateObstacle:
		strategy := entities.StrategyForce
		if sess.Obstacle != nil && sess.Obstacle.Category != entities.ObstacleCategoryDoor {
			strategy = entities.StrategyCareful
		}
		next, err := delve.ResolveObstacle(ctx, sess.ID, strategy)
		return next, false, err

	case entities.SessionStateSurprise:
		next, err := delve.SurpriseAct(ctx, sess.ID, entities.SurpriseAmbush)
		return next, false, err

	case entities.SessionStateEncounter:
		action := entities.ActionFight
		if len(snap.Living())*2 <= len(snap.Members) {
			action = entities.ActionFlee
		} else if casterReady(snap) && sess.Encounter != nil && sess.Encounter.ActiveMonsters() >= 3 {
			action = entities.ActionSpell
		}
		next, err := delve.Act(ctx, sess.ID, action)
		return next, false, err

	case entities.SessionStateLoot:
		next, err := delve.Loot(ctx, sess.ID)
		return next, false, err

	case entities.SessionStateReturning:
		next, err := delve.ContinueReturn(ctx, sess.ID)
		return next, true, err
	}

	return nil, false, fmt.Errorf("no policy for state %s", sess.State)
}

func casterReady(snap *entities.PartySnapshot) bool {
	for _, m := range snap.Living() {
		if m.SpellSlots > 0 {
			return true
		}
	}
	return false
}
