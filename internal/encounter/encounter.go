// Package encounter is the doorway between world events and battles: it
// previews the opposition, asks the author to commit, and builds and runs
// the fight.
package encounter

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/enemy"
	"github.com/etheris-rpg/etheris/internal/metrics"
)

// Embed colors graded by how badly the PL comparison goes for the author.
const (
	colorSafe     = 0x2ECC71 // green
	colorEven     = 0xF1C40F // yellow
	colorRisky    = 0xE67E22 // orange
	colorDeadly   = 0xE74C3C // red
	colorHopeless = 0x992D22 // dark red
)

// EnemyLine is one opponent row of the preview.
type EnemyLine struct {
	Name         string
	PowerLevel   int64
	Vitality     int32
	Resistance   int32
	Ether        int32
	Strength     int32
	Intelligence int32
	Boss         bool
}

// Preview is everything the confirmation embed shows.
type Preview struct {
	Author       string
	AuthorPL     int64
	EnemyPL      int64
	Enemies      []EnemyLine
	Color        int
	Strength     string
	Intelligence string
	Rewards      []string
}

// Prompter asks the author to commit to the fight.
type Prompter interface {
	Confirm(ctx context.Context, preview Preview) (bool, error)
}

// AlwaysConfirm accepts every encounter. Used for instant battles and tests.
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(context.Context, Preview) (bool, error) { return true, nil }

var titleCaser = cases.Title(language.English)

// BuildPreview grades the fight from the author's side of the table.
func BuildPreview(author domain.FighterData, enemies []enemy.Template) Preview {
	p := Preview{
		Author:   author.Name,
		AuthorPL: author.PowerLevel(),
	}

	var strongest, smartest int32
	for _, tmpl := range enemies {
		p.EnemyPL += tmpl.PowerLevel()
		p.Enemies = append(p.Enemies, EnemyLine{
			Name:         tmpl.Name,
			PowerLevel:   tmpl.PowerLevel(),
			Vitality:     tmpl.Vitality,
			Resistance:   tmpl.Resistance,
			Ether:        tmpl.Ether,
			Strength:     tmpl.StrengthLevel,
			Intelligence: tmpl.IntelligenceLevel,
			Boss:         tmpl.BossTag != "",
		})
		if tmpl.StrengthLevel > strongest {
			strongest = tmpl.StrengthLevel
		}
		if tmpl.IntelligenceLevel > smartest {
			smartest = tmpl.IntelligenceLevel
		}
		p.Rewards = append(p.Rewards, rewardPreview(tmpl)...)
	}

	p.Color = gradeColor(p.AuthorPL, p.EnemyPL)
	p.Strength = comparative(author.StrengthLevel, strongest)
	p.Intelligence = comparative(author.IntelligenceLevel, smartest)
	return p
}

// gradeColor colors the embed by the PL differential.
func gradeColor(author, enemies int64) int {
	if enemies <= 0 {
		return colorSafe
	}
	ratio := float64(author) / float64(enemies)
	switch {
	case ratio >= 1.5:
		return colorSafe
	case ratio >= 0.9:
		return colorEven
	case ratio >= 0.65:
		return colorRisky
	case ratio >= 0.4:
		return colorDeadly
	default:
		return colorHopeless
	}
}

// comparative buckets the author's level against the enemies' best into
// seven steps of confidence.
func comparative(author, enemy int32) string {
	diff := author - enemy
	switch {
	case diff >= 10:
		return "overwhelming advantage"
	case diff >= 5:
		return "clear advantage"
	case diff >= 2:
		return "slight advantage"
	case diff >= -1:
		return "evenly matched"
	case diff >= -4:
		return "slight disadvantage"
	case diff >= -9:
		return "clear disadvantage"
	default:
		return "overwhelming disadvantage"
	}
}

func rewardPreview(tmpl enemy.Template) []string {
	if tmpl.Drop == nil {
		return nil
	}
	out := []string{fmt.Sprintf("%d-%d orbs", tmpl.Drop.OrbsLo, tmpl.Drop.OrbsHi)}
	for _, line := range tmpl.Drop.Items {
		name := line.ItemIdentifier
		if item, ok := domain.GetItem(line.ItemIdentifier); ok {
			name = item.DisplayName
		} else {
			name = titleCaser.String(name)
		}
		out = append(out, name)
	}
	return out
}

// Options configure how encounter battles run.
type Options struct {
	// Seed seeds the battle RNG; zero draws from the wall clock.
	Seed int64
	// RiskLifeAllowed lets fighters wager vitality. Encounter battles
	// default to allowing it.
	Controller controller.Options

	// OnStart observes the controller right before the battle runs, so
	// callers can expose it for intrusions.
	OnStart func(*controller.Controller)
}

// Service runs encounters end to end.
type Service struct {
	provider controller.InputProvider
	renderer controller.Renderer
	prompter Prompter
	opts     Options
}

// NewService wires an encounter runner. A nil prompter auto-confirms.
func NewService(provider controller.InputProvider, renderer controller.Renderer, prompter Prompter, opts Options) *Service {
	if prompter == nil {
		prompter = AlwaysConfirm{}
	}
	return &Service{provider: provider, renderer: renderer, prompter: prompter, opts: opts}
}

// Start previews the fight, asks for confirmation unless instant, then
// builds and runs the battle: author on team 0, every enemy on team 1,
// two intruder slots. A declined prompt returns (nil, nil).
func (s *Service) Start(ctx context.Context, author domain.FighterData, enemies []enemy.Template, region domain.Region, instant bool) (*controller.Result, error) {
	if len(enemies) == 0 {
		return nil, fmt.Errorf("%w: encounter needs at least one enemy", domain.ErrNotEnoughFighters)
	}
	author.Team = 0

	if !instant {
		metrics.EncountersOffered.WithLabelValues(string(region)).Inc()
		ok, err := s.prompter.Confirm(ctx, BuildPreview(author, enemies))
		if err != nil || !ok {
			return nil, err
		}
		metrics.EncountersAccepted.WithLabelValues(string(region)).Inc()
	}

	data := make([]domain.FighterData, 0, len(enemies)+1)
	data = append(data, author)
	for _, tmpl := range enemies {
		data = append(data, tmpl.FighterData(1))
	}

	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b, err := battle.New(region, battle.Settings{
		IsRiskingLifeAllowed: true,
		HasConsequences:      true,
		MaxIntruders:         2,
	}, seed, data...)
	if err != nil {
		return nil, err
	}

	c := controller.New(b, s.provider, s.renderer, s.opts.Controller)
	if s.opts.OnStart != nil {
		s.opts.OnStart(c)
	}
	return c.Run(ctx)
}
