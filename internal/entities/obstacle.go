package entities

// ObstacleCategory is the closed set of obstacle kinds; behavior dispatch
// is on this type, never on free-form strings
type ObstacleCategory string

const (
	ObstacleCategoryDoor   ObstacleCategory = "door"
	ObstacleCategoryTrap   ObstacleCategory = "trap"
	ObstacleCategoryHazard ObstacleCategory = "hazard"
)

// ObstacleID identifies a catalog obstacle
type ObstacleID string

const (
	ObstacleStuckDoor       ObstacleID = "stuck_door"
	ObstacleLockedDoor      ObstacleID = "locked_door"
	ObstacleSecretDoor      ObstacleID = "secret_door"
	ObstaclePitTrap         ObstacleID = "pit_trap"
	ObstacleDartTrap        ObstacleID = "dart_trap"
	ObstaclePoisonNeedle    ObstacleID = "poison_needle"
	ObstacleChasm           ObstacleID = "chasm"
	ObstacleSlipperyLedge   ObstacleID = "slippery_ledge"
	ObstacleFloodedPassage  ObstacleID = "flooded_passage"
	ObstacleCollapsedTunnel ObstacleID = "collapsed_tunnel"
)

// Strategy is how the party tackles an obstacle
type Strategy string

const (
	StrategyForce   Strategy = "force"
	StrategyCareful Strategy = "careful"
	StrategyAvoid   Strategy = "avoid"
)

// SaveKind is the saving throw category a trap calls for
type SaveKind string

const (
	SavePoison    SaveKind = "poison"
	SaveWands     SaveKind = "wands"
	SaveParalysis SaveKind = "paralysis"
	SaveBreath    SaveKind = "breath"
	SaveSpells    SaveKind = "spells"
)

// ObstacleOutcome records how an obstacle ended up resolved
type ObstacleOutcome string

const (
	OutcomePending   ObstacleOutcome = "pending"
	OutcomeForced    ObstacleOutcome = "forced"
	OutcomePicked    ObstacleOutcome = "picked"
	OutcomeDisarmed  ObstacleOutcome = "disarmed"
	OutcomeTriggered ObstacleOutcome = "triggered"
	OutcomeCrossed   ObstacleOutcome = "crossed"
	OutcomeAvoided   ObstacleOutcome = "avoided"
)

// ObstacleState is the live obstacle blocking the party.
// Invariant: the session leaves the obstacle state exactly when
// Resolved flips true.
type ObstacleState struct {
	ID           ObstacleID       `json:"id"`
	Category     ObstacleCategory `json:"category"`
	Name         string           `json:"name"`
	Resolved     bool             `json:"resolved"`
	Outcome      ObstacleOutcome  `json:"outcome"`
	Attempts     int              `json:"attempts"`
	CarefulSpent bool             `json:"careful_spent,omitempty"`
}
