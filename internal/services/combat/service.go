package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/rulebook"
)

// Service resolves combat rounds against the pooled monster group
type Service interface {
	// Round resolves one full combat round for the chosen action. Calls
	// outside the encounter state are silent no-ops.
	Round(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, action entities.CombatAction) (*RoundResult, error)

	// SurpriseRound resolves the party's free choice over a surprised
	// group, from the surprise state.
	SurpriseRound(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, action entities.SurpriseAction) (*RoundResult, error)
}

// RoundResult reports one round for roster writeback and the log
type RoundResult struct {
	Round        int
	PoolDamage   int                     // what the party dealt this round
	MemberDamage []entities.MemberDamage // what the party took, per hit
	SpellCasters []string                // member IDs that spent a spell slot
	Victory      bool                    // the pool emptied; loot awaits
	MonstersFled bool                    // morale broke
	PartyEscaped bool                    // the party got away clean
	Parleyed     bool                    // settled with words
	PartyDown    bool                    // nobody left standing
	NoOp         bool
}

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	return &service{roller: cfg.Roller}
}

// Round resolves one full combat round for the chosen action
func (s *service) Round(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, action entities.CombatAction) (*RoundResult, error) {
	if ses == nil {
		return nil, dlverr.InvalidArgument("session cannot be nil")
	}
	if party == nil {
		return nil, dlverr.InvalidArgument("party cannot be nil")
	}

	if ses.State != entities.SessionStateEncounter || ses.Encounter == nil {
		return &RoundResult{NoOp: true}, nil
	}

	switch action {
	case entities.ActionFight:
		return s.fightRound(ses, party, false)
	case entities.ActionSpell:
		return s.fightRound(ses, party, true)
	case entities.ActionFlee:
		return s.fleeRound(ses, party)
	case entities.ActionParley:
		return s.parleyRound(ses, party)
	default:
		return &RoundResult{NoOp: true}, nil
	}
}

// fightRound rolls initiative and runs both attack phases. Morale is
// evaluated as soon as the party's damage is in; monsters that break
// before their phase never get to swing.
func (s *service) fightRound(ses *entities.DungeonSession, party *entities.PartySnapshot, spell bool) (*RoundResult, error) {
	enc := ses.Encounter
	enc.Round++
	result := &RoundResult{Round: enc.Round}
	effective := effectiveHP(party)

	partyInit, err := s.roller.RollDie(6)
	if err != nil {
		return nil, err
	}
	monsterInit, err := s.roller.RollDie(6)
	if err != nil {
		return nil, err
	}

	switch {
	case partyInit > monsterInit:
		if err := s.partyPhase(ses, party, effective, result, spell); err != nil {
			return nil, err
		}
		if enc.Defeated() {
			s.victory(ses, result)
			return result, nil
		}
		broke, err := s.evaluateMorale(ses, result.PoolDamage)
		if err != nil {
			return nil, err
		}
		if broke {
			s.monstersFlee(ses, result)
			return result, nil
		}
		if err := s.monsterPhase(ses, party, effective, enc.ActiveMonsters(), false, result); err != nil {
			return nil, err
		}
		if allDown(effective) {
			s.partyFalls(ses, result)
		}

	case monsterInit > partyInit:
		if err := s.monsterPhase(ses, party, effective, enc.ActiveMonsters(), false, result); err != nil {
			return nil, err
		}
		if allDown(effective) {
			s.partyFalls(ses, result)
			return result, nil
		}
		if err := s.partyPhase(ses, party, effective, result, spell); err != nil {
			return nil, err
		}
		if enc.Defeated() {
			s.victory(ses, result)
			return result, nil
		}
		broke, err := s.evaluateMorale(ses, result.PoolDamage)
		if err != nil {
			return nil, err
		}
		if broke {
			s.monstersFlee(ses, result)
		}

	default:
		// Simultaneous: both phases resolve against the pre-round state.
		attackers := enc.ActiveMonsters()
		if err := s.partyPhase(ses, party, effective, result, spell); err != nil {
			return nil, err
		}
		if err := s.monsterPhase(ses, party, effective, attackers, true, result); err != nil {
			return nil, err
		}
		if allDown(effective) {
			s.partyFalls(ses, result)
			return result, nil
		}
		if enc.Defeated() {
			s.victory(ses, result)
			return result, nil
		}
		broke, err := s.evaluateMorale(ses, result.PoolDamage)
		if err != nil {
			return nil, err
		}
		if broke {
			s.monstersFlee(ses, result)
		}
	}

	return result, nil
}

// fleeRound gives the monsters a normal phase at the party's backs,
// then lets their morale decide whether the chase is on
func (s *service) fleeRound(ses *entities.DungeonSession, party *entities.PartySnapshot) (*RoundResult, error) {
	enc := ses.Encounter
	enc.Round++
	result := &RoundResult{Round: enc.Round}
	effective := effectiveHP(party)

	ses.AppendLog(entities.LogCombat, "The party turns and runs!")
	if err := s.monsterPhase(ses, party, effective, enc.ActiveMonsters(), false, result); err != nil {
		return nil, err
	}
	if allDown(effective) {
		s.partyFalls(ses, result)
		return result, nil
	}

	broke, err := s.moraleCheck(enc)
	if err != nil {
		return nil, err
	}
	if broke {
		ses.AppendLog(entities.LogCombat, "The %s give up the chase.", enc.Name)
		ses.Encounter = nil
		ses.State = entities.SessionStateIdle
		result.PartyEscaped = true
		return result, nil
	}

	ses.AppendLog(entities.LogCombat, "The %s stay right on the party's heels!", enc.Name)
	return result, nil
}

// parleyRound re-rolls reaction, sweetened by every overture before it
func (s *service) parleyRound(ses *entities.DungeonSession, party *entities.PartySnapshot) (*RoundResult, error) {
	enc := ses.Encounter
	enc.Round++
	result := &RoundResult{Round: enc.Round}

	bonus := enc.ParleyAttempts
	enc.ParleyAttempts++

	roll, err := s.roller.Roll(2, 6, bonus)
	if err != nil {
		return nil, err
	}
	disposition := rulebook.ReactionFor(roll.Total)
	enc.Disposition = disposition

	switch disposition {
	case entities.DispositionFriendly, entities.DispositionNeutral:
		ses.AppendLog(entities.LogCombat, "Words find their mark; the %s stand down.", enc.Name)
		ses.Encounter = nil
		ses.State = entities.SessionStateIdle
		result.Parleyed = true

	case entities.DispositionCautious:
		ses.AppendLog(entities.LogCombat, "The %s withdraw, weapons still out.", enc.Name)
		ses.Encounter = nil
		ses.State = entities.SessionStateIdle
		result.Parleyed = true

	default:
		// Talking to the wrong crowd buys them a free swing.
		ses.AppendLog(entities.LogCombat, "The %s answer with steel.", enc.Name)
		effective := effectiveHP(party)
		if err := s.monsterPhase(ses, party, effective, enc.ActiveMonsters(), false, result); err != nil {
			return nil, err
		}
		if allDown(effective) {
			s.partyFalls(ses, result)
		}
	}

	return result, nil
}

// SurpriseRound resolves the party's free choice over a surprised group
func (s *service) SurpriseRound(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, action entities.SurpriseAction) (*RoundResult, error) {
	if ses == nil {
		return nil, dlverr.InvalidArgument("session cannot be nil")
	}
	if party == nil {
		return nil, dlverr.InvalidArgument("party cannot be nil")
	}

	if ses.State != entities.SessionStateSurprise || ses.Encounter == nil {
		return &RoundResult{NoOp: true}, nil
	}

	enc := ses.Encounter
	result := &RoundResult{Round: enc.Round}

	switch action {
	case entities.SurpriseEvade:
		ses.AppendLog(entities.LogCombat, "The party slips back the way it came, unseen.")
		ses.Encounter = nil
		ses.State = entities.SessionStateIdle
		result.PartyEscaped = true

	case entities.SurpriseAmbush:
		enc.Round++
		result.Round = enc.Round
		effective := effectiveHP(party)
		ses.AppendLog(entities.LogCombat, "The party falls on the %s before they can rise.", enc.Name)
		if err := s.partyPhase(ses, party, effective, result, false); err != nil {
			return nil, err
		}
		if enc.Defeated() {
			s.victory(ses, result)
			return result, nil
		}
		ses.AppendLog(entities.LogCombat, "The survivors scramble up, weapons out.")
		ses.State = entities.SessionStateEncounter

	case entities.SurpriseReveal:
		roll, err := s.roller.Roll(2, 6, 1)
		if err != nil {
			return nil, err
		}
		disposition := rulebook.ReactionFor(roll.Total)
		enc.Disposition = disposition
		if disposition == entities.DispositionFriendly || disposition == entities.DispositionNeutral {
			ses.AppendLog(entities.LogCombat, "Startled, the %s settle; nobody reaches for a weapon.", enc.Name)
			ses.Encounter = nil
			ses.State = entities.SessionStateIdle
			result.Parleyed = true
		} else {
			ses.AppendLog(entities.LogCombat, "The %s spring up snarling.", enc.Name)
			ses.State = entities.SessionStateEncounter
		}

	default:
		return &RoundResult{NoOp: true}, nil
	}

	return result, nil
}

// partyPhase has every standing member attack once, in roster order,
// stopping as soon as nothing is left to hit. A spell round trades the
// weapon swings of slot-holders for automatic-hit bolts; everyone else
// holds.
func (s *service) partyPhase(ses *entities.DungeonSession, party *entities.PartySnapshot, effective map[string]int, result *RoundResult, spell bool) error {
	enc := ses.Encounter
	for _, member := range party.Members {
		if effective[member.ID] <= 0 {
			continue
		}
		if enc.Defeated() {
			break
		}

		if spell {
			if member.SpellSlots <= 0 {
				continue
			}
			bolt, err := s.roller.Roll(1, 6, 1)
			if err != nil {
				return err
			}
			enc.ApplyPoolDamage(bolt.Total)
			result.PoolDamage += bolt.Total
			result.SpellCasters = append(result.SpellCasters, member.ID)
			ses.AppendLog(entities.LogCombat, "%s's bolt sears the %s for %d.", member.Name, enc.Name, bolt.Total)
			continue
		}

		natural, err := s.roller.RollDie(20)
		if err != nil {
			return err
		}
		if !rulebook.HitsThreshold(natural, member.AttackThreshold, enc.ArmorClass) {
			continue
		}

		damage, err := s.roller.RollDie(member.WeaponDie())
		if err != nil {
			return err
		}
		enc.ApplyPoolDamage(damage)
		result.PoolDamage += damage
		ses.AppendLog(entities.LogCombat, "%s hits the %s for %d.", member.Name, enc.Name, damage)
	}
	return nil
}

// monsterPhase has attackers swing at uniformly random standing members.
// A frozen phase (simultaneous initiative) keeps targeting the members
// who were up when the round began, even as they drop.
func (s *service) monsterPhase(ses *entities.DungeonSession, party *entities.PartySnapshot, effective map[string]int, attackers int, frozen bool, result *RoundResult) error {
	enc := ses.Encounter
	threshold := rulebook.MonsterAttackThreshold(enc.HitDice)

	startAlive := make(map[string]bool, len(party.Members))
	for _, m := range party.Members {
		startAlive[m.ID] = effective[m.ID] > 0
	}

	for i := 0; i < attackers; i++ {
		var targets []*entities.Member
		for _, m := range party.Members {
			if frozen && startAlive[m.ID] || !frozen && effective[m.ID] > 0 {
				targets = append(targets, m)
			}
		}
		if len(targets) == 0 {
			break
		}

		pick, err := s.roller.RollDie(len(targets))
		if err != nil {
			return err
		}
		target := targets[pick-1]

		natural, err := s.roller.RollDie(20)
		if err != nil {
			return err
		}
		if !rulebook.HitsThreshold(natural, threshold, target.ArmorClass) {
			continue
		}

		damage, err := enc.Damage.Roll(s.roller)
		if err != nil {
			return err
		}
		if damage < 1 {
			damage = 1
		}
		effective[target.ID] -= damage
		result.MemberDamage = append(result.MemberDamage, entities.MemberDamage{MemberID: target.ID, Amount: damage})
		ses.AppendLog(entities.LogCombat, "The %s tears into %s for %d.", enc.Name, target.Name, damage)
	}
	return nil
}

// evaluateMorale walks the triggers in priority order once the party's
// damage for the round is in. Every unfired trigger whose condition
// holds burns and checks; the first check that breaks ends it.
func (s *service) evaluateMorale(ses *entities.DungeonSession, roundDamage int) (bool, error) {
	enc := ses.Encounter
	if enc.Defeated() {
		return false, nil
	}

	for _, trigger := range entities.MoraleTriggerOrder {
		if enc.FiredTrigger(trigger) {
			continue
		}

		var hit bool
		switch trigger {
		case entities.MoraleFirstBlood:
			hit = enc.DamageTaken() > 0
		case entities.MoraleFirstDeath:
			hit = roundDamage >= enc.AvgMonsterHP()
		case entities.MoraleQuarterPool:
			hit = enc.PoolFraction() <= 0.25
		case entities.MoraleHalfPool:
			hit = enc.PoolFraction() <= 0.5
		}
		if !hit {
			continue
		}

		enc.MarkTrigger(trigger)
		broke, err := s.moraleCheck(enc)
		if err != nil {
			return false, err
		}
		if broke {
			return true, nil
		}
	}
	return false, nil
}

// moraleCheck rolls 2d6 against the adjusted morale score; true means
// the monsters break. A raw 12 never breaks, an adjusted 2 never holds,
// and neither rolls.
func (s *service) moraleCheck(enc *entities.EncounterState) (bool, error) {
	if enc.MoraleScore >= rulebook.MoraleNeverFlee {
		return false, nil
	}

	adjusted := enc.MoraleScore
	switch {
	case enc.PoolFraction() <= 0.25:
		adjusted -= rulebook.MoraleQuarterPenalty
	case enc.PoolFraction() <= 0.5:
		adjusted -= rulebook.MoraleHalfPenalty
	}
	if adjusted <= rulebook.MoraleAutoFlee {
		return true, nil
	}

	roll, err := s.roller.Roll(2, 6, 0)
	if err != nil {
		return false, err
	}
	return roll.Total > adjusted, nil
}

func (s *service) victory(ses *entities.DungeonSession, result *RoundResult) {
	ses.AppendLog(entities.LogCombat, "The last %s drops.", ses.Encounter.Name)
	ses.State = entities.SessionStateLoot
	result.Victory = true
}

func (s *service) monstersFlee(ses *entities.DungeonSession, result *RoundResult) {
	ses.AppendLog(entities.LogCombat, "The %s break and scatter into the dark.", ses.Encounter.Name)
	ses.Encounter = nil
	ses.State = entities.SessionStateIdle
	result.MonstersFled = true
}

func (s *service) partyFalls(ses *entities.DungeonSession, result *RoundResult) {
	ses.AppendLog(entities.LogCombat, "Nobody is left standing.")
	ses.Encounter = nil
	ses.State = entities.SessionStateIdle
	result.PartyDown = true
}

func effectiveHP(party *entities.PartySnapshot) map[string]int {
	out := make(map[string]int, len(party.Members))
	for _, m := range party.Members {
		out[m.ID] = m.CurrentHP
	}
	return out
}

func allDown(effective map[string]int) bool {
	for _, hp := range effective {
		if hp > 0 {
			return false
		}
	}
	return true
}
