package battle

// InputKind enumerates the actions a fighter (or its brain) can take.
type InputKind string

const (
	InputAttack       InputKind = "attack"
	InputDefend       InputKind = "defend"
	InputUseSkill     InputKind = "use_skill"
	InputFinish       InputKind = "finish"
	InputGetUp        InputKind = "get_up"
	InputUpkick       InputKind = "upkick"
	InputChangeTarget InputKind = "change_target"
	InputChangeTeam   InputKind = "change_team"
	// InputReinput returns control to the prompt without consuming the
	// action; the UI uses it to escape submenus.
	InputReinput InputKind = "reinput"
	InputNothing InputKind = "nothing"
)

// Input is one resolved fighter decision.
type Input struct {
	Kind InputKind

	// SkillIndex selects into the fighter's equipped skills for UseSkill.
	SkillIndex int

	// Finisher selects into the fighter's finisher list for Finish.
	Finisher int

	// Target is the new target for ChangeTarget.
	Target FighterIndex

	// Team is the destination team for ChangeTeam.
	Team uint8
}

// Attack is the plain attack input.
func Attack() Input { return Input{Kind: InputAttack} }

// Defend is the defend input.
func Defend() Input { return Input{Kind: InputDefend} }

// UseSkill selects the equipped skill at the index.
func UseSkill(index int) Input { return Input{Kind: InputUseSkill, SkillIndex: index} }

// Finish selects the finisher at the index.
func Finish(index int) Input { return Input{Kind: InputFinish, Finisher: index} }

// GetUp is the stand-up input.
func GetUp() Input { return Input{Kind: InputGetUp} }

// Upkick is the attacking stand-up input.
func Upkick() Input { return Input{Kind: InputUpkick} }

// ChangeTarget retargets the fighter.
func ChangeTarget(target FighterIndex) Input {
	return Input{Kind: InputChangeTarget, Target: target}
}

// ChangeTeam moves the fighter to another team.
func ChangeTeam(team uint8) Input {
	return Input{Kind: InputChangeTeam, Team: team}
}

// Nothing ends the turn without acting.
func Nothing() Input { return Input{Kind: InputNothing} }

// Reinput re-opens the prompt without consuming the action.
func Reinput() Input { return Input{Kind: InputReinput} }
