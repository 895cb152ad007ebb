package core

// Rules holds the fixed tuning of a crossing session. Values are not player
// configurable; DefaultRules is the only source used by the frontends.
type Rules struct {
	// Grid
	CellWidth  float64
	CellHeight float64

	// Player
	PlayerStart   Vec
	PlayerSprite  SpriteID
	StartingLives int
	GoalY         float64 // player wins when y drops below this
	MinX, MaxX    float64 // stage clamp after every step
	MinY, MaxY    float64
	PlayerBox     Vec // collision width/height

	// Enemies
	EnemyCount  int
	EnemySpawnX float64
	EnemySprite SpriteID
	EnemyDir    Vec
	LaneCount   int
	LaneOffset  float64 // y of the first lane
	WrapX       float64 // enemies past this x respawn
	EnemyBox    Vec
	SpeedMin    float64
	SpeedRange  float64

	// Messages
	MessageTTL float64 // seconds a win/death notice stays up
}

const (
	SpriteEnemy  SpriteID = "images/enemy-bug.png"
	SpritePlayer SpriteID = "images/char-boy.png"
)

// DefaultRules returns the classic 5x6 stage tuning.
func DefaultRules() Rules {
	const cellW, cellH = 101.0, 83.0
	return Rules{
		CellWidth:  cellW,
		CellHeight: cellH,

		PlayerStart:   Vec{X: 200, Y: 390},
		PlayerSprite:  SpritePlayer,
		StartingLives: 3,
		GoalY:         10,
		MinX:          -2,
		MaxX:          402,
		MinY:          -20,
		MaxY:          390,
		PlayerBox:     Vec{X: 60, Y: 80},

		EnemyCount:  4,
		EnemySpawnX: -90,
		EnemySprite: SpriteEnemy,
		EnemyDir:    Vec{X: 1, Y: 0},
		LaneCount:   3,
		LaneOffset:  55,
		WrapX:       6 * cellH,
		EnemyBox:    Vec{X: 60, Y: 83},
		SpeedMin:    80,
		SpeedRange:  300,

		MessageTTL: 2,
	}
}

// LaneY returns the y coordinate of a lane index.
func (r *Rules) LaneY(lane int) float64 {
	return float64(lane)*r.CellHeight + r.LaneOffset
}
