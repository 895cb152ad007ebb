package systems

import (
	"image/color"

	"github.com/automoto/bugcrossing/archetypes"
	"github.com/automoto/bugcrossing/components"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/core"
	"github.com/automoto/bugcrossing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes mirrors the session's collision boxes into a resolv space
// while the overlay is on.
func UpdateHitboxes(ecs *ecs.ECS) {
	if !GetOrCreateSettings(ecs).Hitboxes {
		return
	}
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	space := getOrCreateSpace(ecs)
	state := session.State

	objects := map[int]*resolv.Object{}
	tags.Hitbox.Each(ecs.World, func(entry *donburi.Entry) {
		objects[components.Hitbox.Get(entry).Slot] = components.Object.Get(entry).Object
	})

	syncHitbox(ecs, space, objects, components.HitboxSlotPlayer, state.Player.Box(), tags.ResolvPlayer)
	for i, enemy := range state.Enemies {
		syncHitbox(ecs, space, objects, i, enemy.Box(), tags.ResolvEnemy)
	}
}

func syncHitbox(ecs *ecs.ECS, space *resolv.Space, objects map[int]*resolv.Object, slot int, box core.Box, tag string) {
	obj, ok := objects[slot]
	if !ok {
		obj = resolv.NewObject(box.X, box.Y, box.W, box.H, tag)
		space.Add(obj)

		entry := archetypes.Hitbox.Spawn(ecs)
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
		components.Hitbox.SetValue(entry, components.HitboxData{Slot: slot})
		return
	}
	obj.X, obj.Y, obj.W, obj.H = box.X, box.Y, box.W, box.H
	obj.Update()
}

// hitboxState classifies an outlined hitbox.
type hitboxState int

const (
	hitboxIdle hitboxState = iota
	// shares a broad-phase cell with the player
	hitboxNeighbour
	// overlaps the player
	hitboxOverlap
)

// classifyHitboxes flags every enemy near or touching a player. Objects not
// in the result are idle.
func classifyHitboxes(space *resolv.Space) map[*resolv.Object]hitboxState {
	states := map[*resolv.Object]hitboxState{}
	for _, p := range space.Objects() {
		if !p.HasTags(tags.ResolvPlayer) {
			continue
		}
		check := p.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			switch {
			case boxOf(p).Overlaps(boxOf(o)):
				states[o] = hitboxOverlap
			case states[o] != hitboxOverlap:
				states[o] = hitboxNeighbour
			}
		}
	}
	return states
}

// DrawDebug outlines every hitbox. Enemies sharing a broad-phase cell with
// the player are highlighted and overlapping ones are drawn in red.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Hitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	states := classifyHitboxes(space)
	for _, obj := range space.Objects() {
		c := cfg.Debug.HitboxColor
		switch states[obj] {
		case hitboxNeighbour:
			c = cfg.Debug.NeighbourColor
		case hitboxOverlap:
			c = cfg.Red
		}
		drawOutline(screen, obj, c)
	}
}

func boxOf(obj *resolv.Object) core.Box {
	return core.Box{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func drawOutline(screen *ebiten.Image, obj *resolv.Object, c color.RGBA) {
	x, y := float32(obj.X), float32(obj.Y)
	w, h := float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// getOrCreateSpace returns the broad-phase space sized to the stage grid.
func getOrCreateSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Space))
		stageHeight := cfg.C.Height - cfg.HUD.Height
		components.Space.Set(entry, resolv.NewSpace(cfg.C.Width, stageHeight, cfg.Stage.TileWidth, cfg.Stage.TileHeight))
	}
	return components.Space.Get(entry)
}
