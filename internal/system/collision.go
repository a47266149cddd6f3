package system

import (
	"time"

	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
)

// Rules tunes the collision reactions.
type Rules struct {
	// PickupDelay keeps the player from grabbing objects at spawn.
	PickupDelay time.Duration
	// ContactDamage is dealt to the player by a touching enemy; the
	// player's Health.Cooldown spaces the hits.
	ContactDamage int
	// ProjectileDamage is used for projectiles that carry no damage.
	ProjectileDamage int
	PotionHeal       int
}

func DefaultRules() Rules {
	return Rules{
		PickupDelay:      time.Second,
		ContactDamage:    1,
		ProjectileDamage: 1,
		PotionHeal:       3,
	}
}

// QuizPrompter opens the question behind a clue. ShowQuestion reports
// whether a question is now on screen.
type QuizPrompter interface {
	ShowQuestion(clue *ecs.Entity) bool
}

// Collision applies the overlap rules between the player, terrain, pickups,
// enemies and projectiles. It only marks entities destroyed; the manager
// removes them on the next Refresh.
type Collision struct {
	Session *session.State
	Quiz    QuizPrompter
	Rules   Rules
}

func NewCollision(s *session.State, quiz QuizPrompter, rules Rules) *Collision {
	return &Collision{Session: s, Quiz: quiz, Rules: rules}
}

// body is the part of an entity the rules look at.
type body struct {
	e         *ecs.Entity
	collider  *component.Collider
	transform *component.Transform
}

func bodyOf(e *ecs.Entity) (body, bool) {
	if !e.IsActive() {
		return body{}, false
	}
	c, ok := ecs.Lookup[*component.Collider](e)
	if !ok {
		return body{}, false
	}
	t, _ := ecs.Lookup[*component.Transform](e)
	return body{e: e, collider: c, transform: t}, true
}

func (b body) overlaps(o body) bool { return AABB(b.collider.Rect, o.collider.Rect) }

func (b body) snapBack() {
	b.transform.SnapBack()
	b.collider.Sync()
}

func (c *Collision) Update(m *ecs.Manager, _ float64) {
	s := c.Session
	if s.Blocked() {
		return
	}
	pe, ok := m.Resolve(s.Player)
	if !ok {
		return
	}
	player, ok := bodyOf(pe)
	if !ok {
		return
	}
	terrain := bodies(m.Group(component.GroupColliders))

	for _, t := range terrain {
		if player.overlaps(t) {
			player.snapBack()
			break
		}
	}

	if s.SinceLevelStart() >= c.Rules.PickupDelay {
		if c.pickups(m, player) {
			return
		}
	}

	projectiles := bodies(m.Group(component.GroupProjectiles))
	for _, p := range projectiles {
		for _, t := range terrain {
			if p.overlaps(t) {
				p.e.Destroy()
				break
			}
		}
	}

	health, _ := ecs.Lookup[*component.Health](pe)
	for _, en := range bodies(m.Group(component.GroupEnemies)) {
		for _, t := range terrain {
			if en.overlaps(t) {
				en.snapBack()
				break
			}
		}
		c.shootEnemy(en, projectiles)
		if !en.e.IsActive() || health == nil || !en.overlaps(player) {
			continue
		}
		if health.Damage(c.Rules.ContactDamage) {
			s.Media.PlaySound("hurt", 1)
		}
	}

	if health != nil && health.Dead() {
		s.Modal = session.ModalGameOver
		s.Media.StopMusic()
		s.Media.PlaySound("gameover", 1)
	}
}

// pickups handles player contact with objects. It reports true when a quiz
// was opened, which suspends the rest of the frame.
func (c *Collision) pickups(m *ecs.Manager, player body) bool {
	s := c.Session
	for _, o := range bodies(m.Group(component.GroupObjects)) {
		if !player.overlaps(o) {
			continue
		}
		obj, ok := ecs.Lookup[*component.Object](o.e)
		if !ok {
			continue
		}
		switch obj.Kind {
		case component.ObjectClue:
			if c.Quiz != nil && c.Quiz.ShowQuestion(o.e) {
				return true
			}
		case component.ObjectMagazine:
			if ammo, ok := ecs.Lookup[*component.Ammo](player.e); ok {
				ammo.Reload()
			}
			o.e.Destroy()
			s.Media.PlaySound("pickup", 1)
			s.Say("Picked up a magazine", 2*time.Second)
		case component.ObjectPotion:
			if h, ok := ecs.Lookup[*component.Health](player.e); ok {
				h.Heal(c.Rules.PotionHeal)
			}
			o.e.Destroy()
			s.Media.PlaySound("heal", 1)
			s.Say("Healed", 2*time.Second)
		}
	}
	return false
}

func (c *Collision) shootEnemy(en body, projectiles []body) {
	h, ok := ecs.Lookup[*component.Health](en.e)
	if !ok {
		return
	}
	for _, p := range projectiles {
		if !p.e.IsActive() || !p.overlaps(en) {
			continue
		}
		dmg := c.Rules.ProjectileDamage
		if pr, ok := ecs.Lookup[*component.Projectile](p.e); ok && pr.Damage > 0 {
			dmg = pr.Damage
		}
		p.e.Destroy()
		h.Damage(dmg)
		c.Session.Media.PlaySound("hit", 1)
		if h.Dead() {
			en.e.Destroy()
			c.Session.Kills++
			return
		}
	}
}

func bodies(group []*ecs.Entity) []body {
	out := make([]body, 0, len(group))
	for _, e := range group {
		if b, ok := bodyOf(e); ok {
			out = append(out, b)
		}
	}
	return out
}
