package duel

// Player is the run's persistent combatant as seen by one battle.
type Player struct {
	Health      int
	MaxHealth   int
	Hand        Hand
	Sidearm     *Card // bonus card drawn once per round
	SidearmUsed bool
}

func (p *Player) AddCard(c Card) {
	p.Hand = append(p.Hand, c)
}

func (p *Player) ClearHand() {
	p.Hand = nil
}

// SetSidearm arms the player with a new bonus card for the round.
func (p *Player) SetSidearm(c Card) {
	p.Sidearm = &c
	p.SidearmUsed = false
}

func (p *Player) ClearSidearm() {
	p.Sidearm = nil
	p.SidearmUsed = false
}

// SidearmAvailable reports whether the sidearm can still be played this round.
func (p *Player) SidearmAvailable() bool {
	return p.Sidearm != nil && !p.SidearmUsed
}

// UseSidearm moves the sidearm into the hand. It returns false when there is
// nothing to use.
func (p *Player) UseSidearm() (Card, bool) {
	if !p.SidearmAvailable() {
		return Card{}, false
	}
	p.Hand = append(p.Hand, *p.Sidearm)
	p.SidearmUsed = true
	return *p.Sidearm, true
}

// TakeDamage lowers health, never below zero.
func (p *Player) TakeDamage(amount int) {
	p.Health = max(0, p.Health-amount)
}

// Heal raises health, never above MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(p.MaxHealth, p.Health+amount)
}

func (p *Player) IsBust() bool {
	return IsBust(p.Hand, PlayerBustThreshold)
}

// Boss is the scripted opponent of one battle. It is built fresh from a
// BossTemplate for every battle.
type Boss struct {
	ID            string
	Name          string
	Health        int
	MaxHealth     int
	Hand          Hand
	CurrentWager  int
	BustThreshold int
	StayThreshold int
	WagerSchedule []int
}

func NewBoss(t BossTemplate) *Boss {
	t = t.Normalize()
	return &Boss{
		ID:            t.ID,
		Name:          t.Name,
		Health:        t.Health,
		MaxHealth:     t.Health,
		BustThreshold: t.BustThreshold,
		StayThreshold: t.StayThreshold,
		WagerSchedule: t.WagerSchedule,
	}
}

func (b *Boss) AddCard(c Card) {
	b.Hand = append(b.Hand, c)
}

func (b *Boss) ClearHand() {
	b.Hand = nil
}

// ShouldHit reports whether the boss keeps drawing: below its stay threshold
// and not already over its own bust threshold.
func (b *Boss) ShouldHit() bool {
	return Value(b.Hand) < b.StayThreshold && !b.IsBust()
}

func (b *Boss) IsBust() bool {
	return IsBust(b.Hand, b.BustThreshold)
}

func (b *Boss) TakeDamage(amount int) {
	b.Health = max(0, b.Health-amount)
}

// WagerFor returns the boss wager for round (1-based). Rounds past the end of
// the schedule keep its last value.
func (b *Boss) WagerFor(round int) int {
	if len(b.WagerSchedule) == 0 {
		return 0
	}
	i := min(max(round, 1), len(b.WagerSchedule)) - 1
	return b.WagerSchedule[i]
}

const (
	DefaultBustThreshold = 21
	DefaultStayThreshold = 17
)

// DefaultWagerSchedule escalates faster than the player's minimum wager.
var DefaultWagerSchedule = []int{2, 3, 5, 7, 10, 13}

// BossTemplate describes one opponent of a run.
type BossTemplate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon,omitempty"`
	Description   string `json:"description,omitempty"`
	Health        int    `json:"health"`
	BustThreshold int    `json:"bust_threshold"`
	StayThreshold int    `json:"stay_threshold"`
	WagerSchedule []int  `json:"wager_schedule,omitempty"`
	Difficulty    int    `json:"difficulty"`
}

// Normalize fills unset thresholds and schedule with the defaults.
func (t BossTemplate) Normalize() BossTemplate {
	if t.BustThreshold <= 0 {
		t.BustThreshold = DefaultBustThreshold
	}
	if t.StayThreshold <= 0 {
		t.StayThreshold = DefaultStayThreshold
	}
	if len(t.WagerSchedule) == 0 {
		t.WagerSchedule = DefaultWagerSchedule
	}
	t.WagerSchedule = append([]int(nil), t.WagerSchedule...)
	return t
}

// DefaultBoss stands in when a battle is started without a template.
var DefaultBoss = BossTemplate{
	ID:            "iron_mike",
	Name:          "Iron Mike",
	Icon:          "🦾",
	Description:   "A cybernetic enforcer with nerves of steel",
	Health:        20,
	BustThreshold: DefaultBustThreshold,
	StayThreshold: DefaultStayThreshold,
	Difficulty:    1,
}
