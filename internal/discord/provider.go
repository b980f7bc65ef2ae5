package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/logger"
)

// Component custom-ID prefixes for the battle prompt.
const (
	actionAttack  = "act:attack"
	actionDefend  = "act:defend"
	actionNothing = "act:nothing"
	actionGetUp   = "act:getup"
	actionUpkick  = "act:upkick"
	actionSkill   = "act:skill:"  // + equipped index
	actionFinish  = "act:finish:" // + finisher index
	actionTarget  = "act:target:" // + fighter index

	riskYes = "risk:yes"
	riskNo  = "risk:no"

	joinApprove = "join:approve"
	joinRefuse  = "join:refuse"
)

// maxRowButtons is Discord's per-row component limit.
const maxRowButtons = 5

// BattleProvider prompts human fighters through the Messenger. It
// satisfies the controller's input provider contract.
type BattleProvider struct {
	messenger Messenger
	channelID string
}

// NewBattleProvider creates the prompt UI for one channel.
func NewBattleProvider(messenger Messenger, channelID string) *BattleProvider {
	return &BattleProvider{messenger: messenger, channelID: channelID}
}

// NextInput posts the action prompt and converts the clicked component
// into a battle input.
func (p *BattleProvider) NextInput(ctx context.Context, api *battle.API) (battle.Input, error) {
	fighter := api.Fighter()

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s, choose your action", fighter.Name),
		Description: promptStatusLine(fighter, api.Target()),
		Color:       colorPrompt,
	}

	msgID, err := p.messenger.SendEmbed(ctx, p.channelID, embed, actionComponents(api))
	if err != nil {
		return battle.Input{}, fmt.Errorf("send action prompt: %w", err)
	}

	customID, err := p.messenger.AwaitComponent(ctx, msgID, fighter.User)
	if err != nil {
		return battle.Input{}, err
	}

	input, err := parseActionInput(customID)
	if err != nil {
		logger.FromContext(ctx).Warn("unparseable battle component", "custom_id", customID)
		return battle.Reinput(), nil
	}
	return input, nil
}

// DecideRiskLife asks the near-death fighter whether to keep fighting.
func (p *BattleProvider) DecideRiskLife(ctx context.Context, api *battle.API) (bool, error) {
	fighter := api.Fighter()

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s is on the brink", fighter.Name),
		Description: "Fighting on past your limits puts your life on the line. " +
			"Give up now and you only suffer defeat.",
		Color: colorDanger,
	}
	components := []discordgo.MessageComponent{discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Risk my life", Style: discordgo.DangerButton, CustomID: riskYes},
			discordgo.Button{Label: "Give up", Style: discordgo.SecondaryButton, CustomID: riskNo},
		},
	}}

	msgID, err := p.messenger.SendEmbed(ctx, p.channelID, embed, components)
	if err != nil {
		return false, fmt.Errorf("send risk prompt: %w", err)
	}

	customID, err := p.messenger.AwaitComponent(ctx, msgID, fighter.User)
	if err != nil {
		return false, err
	}
	return customID == riskYes, nil
}

// ApproveTeamJoin asks a team's human whether the candidate may join.
func (p *BattleProvider) ApproveTeamJoin(ctx context.Context, api *battle.API, candidate domain.FighterData) (bool, error) {
	fighter := api.Fighter()

	embed := &discordgo.MessageEmbed{
		Title:       "Reinforcement request",
		Description: fmt.Sprintf("%s wants to join %s's team.", candidate.Name, fighter.Name),
		Color:       colorPrompt,
	}
	components := []discordgo.MessageComponent{discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Welcome them", Style: discordgo.SuccessButton, CustomID: joinApprove},
			discordgo.Button{Label: "Refuse", Style: discordgo.SecondaryButton, CustomID: joinRefuse},
		},
	}}

	msgID, err := p.messenger.SendEmbed(ctx, p.channelID, embed, components)
	if err != nil {
		return false, fmt.Errorf("send join prompt: %w", err)
	}

	customID, err := p.messenger.AwaitComponent(ctx, msgID, fighter.User)
	if err != nil {
		return false, err
	}
	return customID == joinApprove, nil
}

// actionComponents builds the button rows for the acting fighter: core
// actions, then usable skills, then finishers, then a retarget select.
func actionComponents(api *battle.API) []discordgo.MessageComponent {
	fighter := api.Fighter()
	var rows []discordgo.MessageComponent

	core := []discordgo.MessageComponent{}
	if fighter.Composure.Kind == battle.ComposureOnGround {
		core = append(core,
			discordgo.Button{Label: "Get up", Style: discordgo.PrimaryButton, CustomID: actionGetUp},
			discordgo.Button{Label: "Upkick", Style: discordgo.DangerButton, CustomID: actionUpkick},
		)
	} else {
		core = append(core,
			discordgo.Button{Label: "Attack", Style: discordgo.DangerButton, CustomID: actionAttack},
			discordgo.Button{Label: "Defend", Style: discordgo.PrimaryButton, CustomID: actionDefend},
		)
	}
	core = append(core, discordgo.Button{Label: "Wait", Style: discordgo.SecondaryButton, CustomID: actionNothing})

	if target := api.Target(); target != nil && target.CanBeFinished() {
		for idx, finisher := range fighter.Finishers {
			if len(core) == maxRowButtons {
				break
			}
			core = append(core, discordgo.Button{
				Label:    finisher.Name,
				Style:    discordgo.DangerButton,
				CustomID: actionFinish + strconv.Itoa(idx),
			})
		}
	}
	rows = append(rows, discordgo.ActionsRow{Components: core})

	var skills []discordgo.MessageComponent
	for idx, fs := range fighter.Skills {
		if len(skills) == maxRowButtons {
			rows = append(rows, discordgo.ActionsRow{Components: skills})
			skills = nil
		}
		data := fs.Data(fighter)
		style := discordgo.PrimaryButton
		if !fs.CanUse(api) {
			style = discordgo.SecondaryButton
		}
		skills = append(skills, discordgo.Button{
			Label:    fmt.Sprintf("%s (%d)", data.Name, data.EtherCost),
			Style:    style,
			CustomID: actionSkill + strconv.Itoa(idx),
		})
	}
	if len(skills) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: skills})
	}

	if enemies := api.FighterEnemies(); len(enemies) > 1 {
		options := make([]discordgo.SelectMenuOption, 0, len(enemies))
		for _, idx := range enemies {
			enemy := api.Battle().Fighter(idx)
			options = append(options, discordgo.SelectMenuOption{
				Label:   enemy.Name,
				Value:   actionTarget + strconv.Itoa(int(idx)),
				Default: idx == fighter.Target,
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    actionTarget + "menu",
				Placeholder: "Change target",
				Options:     options,
			},
		}})
	}

	return rows
}

// parseActionInput maps a clicked custom ID back to a battle input.
func parseActionInput(customID string) (battle.Input, error) {
	switch customID {
	case actionAttack:
		return battle.Attack(), nil
	case actionDefend:
		return battle.Defend(), nil
	case actionNothing:
		return battle.Nothing(), nil
	case actionGetUp:
		return battle.GetUp(), nil
	case actionUpkick:
		return battle.Upkick(), nil
	}

	switch {
	case strings.HasPrefix(customID, actionSkill):
		idx, err := strconv.Atoi(strings.TrimPrefix(customID, actionSkill))
		if err != nil {
			return battle.Input{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, customID)
		}
		return battle.UseSkill(idx), nil
	case strings.HasPrefix(customID, actionFinish):
		idx, err := strconv.Atoi(strings.TrimPrefix(customID, actionFinish))
		if err != nil {
			return battle.Input{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, customID)
		}
		return battle.Finish(idx), nil
	case strings.HasPrefix(customID, actionTarget):
		idx, err := strconv.Atoi(strings.TrimPrefix(customID, actionTarget))
		if err != nil {
			return battle.Input{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, customID)
		}
		return battle.ChangeTarget(battle.FighterIndex(idx)), nil
	}
	return battle.Input{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, customID)
}

func promptStatusLine(fighter, target *battle.Fighter) string {
	line := fmt.Sprintf("Vitality %d/%d · Resistance %d/%d · Ether %d/%d",
		fighter.Vitality.Value, fighter.Vitality.Max,
		fighter.Resistance.Value, fighter.Resistance.Max,
		fighter.Ether.Value, fighter.Ether.Max)
	if target != nil {
		line += fmt.Sprintf("\nTarget: **%s**", target.Name)
	}
	return line
}
