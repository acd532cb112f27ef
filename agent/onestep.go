package agent

import "github.com/Chenjox/Decision-Processes-Sandbox/game"

// OneStepAgent estimates the opponent's attack probability from observed
// turns and plays whichever action has the greater one-step expected
// reward. Before any observation the estimate is zero; ties go to Counter.
type OneStepAgent struct {
	// rewardCounteredAttack is earned when the agent's attack runs into a
	// counter, rewardCleanCounter when its counter catches an attack, and
	// rewardExchange when both sides pick the same action.
	rewardCounteredAttack float64
	rewardCleanCounter    float64
	rewardExchange        float64

	turnsSeen   int
	attacksSeen int
}

func NewOneStepAgent(rewardCounteredAttack, rewardCleanCounter, rewardExchange float64) *OneStepAgent {
	return &OneStepAgent{
		rewardCounteredAttack: rewardCounteredAttack,
		rewardCleanCounter:    rewardCleanCounter,
		rewardExchange:        rewardExchange,
	}
}

func (o *OneStepAgent) DecideAction(_ game.PlayerState, opponentLast *game.Action, _ *game.PlayerState) game.Action {
	if opponentLast != nil && *opponentLast == game.Attack {
		o.attacksSeen++
	}
	o.turnsSeen++

	pHat := 0.0
	if o.turnsSeen > 0 {
		pHat = float64(o.attacksSeen) / float64(o.turnsSeen)
	}

	attackReward := o.rewardCounteredAttack*(1-pHat) + o.rewardExchange*pHat
	counterReward := o.rewardCleanCounter*pHat + o.rewardExchange*(1-pHat)

	if attackReward > counterReward {
		return game.Attack
	}
	return game.Counter
}

func (o *OneStepAgent) Name() string {
	return "One-Step Estimator"
}

func (o *OneStepAgent) Clone() Agent {
	return &OneStepAgent{
		rewardCounteredAttack: o.rewardCounteredAttack,
		rewardCleanCounter:    o.rewardCleanCounter,
		rewardExchange:        o.rewardExchange,
		turnsSeen:             o.turnsSeen,
		attacksSeen:           o.attacksSeen,
	}
}
