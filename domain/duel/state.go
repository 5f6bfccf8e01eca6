package duel

type State string

const (
	Inactive   State = "inactive"
	Betting    State = "betting"
	Dealing    State = "dealing"
	PlayerTurn State = "playerTurn"
	BossTurn   State = "bossTurn"
	RoundEnd   State = "roundEnd"
	BattleEnd  State = "battleEnd"
)

// nextState returns where a battle normally goes after current. Betting can
// also jump to BattleEnd and PlayerTurn to RoundEnd; those are decided by the
// battle, not here.
func nextState(current State) State {
	states := []State{Betting, Dealing, PlayerTurn, BossTurn, RoundEnd}
	if current == Inactive {
		return Betting
	}
	for i, s := range states {
		if s == current {
			if i < len(states)-1 {
				return states[i+1]
			}
			return states[0]
		}
	}
	return current
}
