package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/gunslinger/domain/duel"
	"github.com/luca-patrignani/gunslinger/domain/run"
)

func healthBar(health, maxHealth int) string {
	if maxHealth <= 0 {
		return ""
	}
	filled := min(max(health, 0), maxHealth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", maxHealth-filled)
	switch {
	case filled*4 <= maxHealth:
		return pterm.LightRed(bar)
	case filled*2 <= maxHealth:
		return pterm.LightYellow(bar)
	}
	return pterm.LightGreen(bar)
}

func handString(h duel.Hand) string {
	if len(h) == 0 {
		return pterm.Gray("no cards")
	}
	return h.String()
}

func printPlayerInfo(b *duel.Battle, name string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
	p := b.Player()
	value := pterm.LightCyan(b.PlayerValue())
	if b.PlayerBust() {
		value = pterm.LightRed("BUST ", b.PlayerValue())
	}
	sidearm := pterm.Gray("none")
	if p.Sidearm != nil {
		sidearm = p.Sidearm.String()
		if p.SidearmUsed {
			sidearm = pterm.Gray("used")
		}
	}
	return pbox.WithTitle(name).WithTitleTopLeft().Sprintf("Health: %d/%d %s\nWager: %d\nHand: %s\nValue: %s\nSidearm: %s",
		p.Health, p.MaxHealth, healthBar(p.Health, p.MaxHealth), b.CurrentWager(), handString(b.PlayerHand()), value, sidearm)
}

func printBossInfo(b *duel.Battle) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	boss := b.Boss()
	value := pterm.LightCyan(b.BossValue())
	if b.BossBust() {
		value = pterm.LightRed("BUST ", b.BossValue())
	}
	return pbox.WithTitle(pterm.LightMagenta(boss.Name)).WithTitleTopLeft().Sprintf("Health: %d/%d %s\nWager: %d\nHand: %s\nValue: %s\nBusts over %d, stays on %d",
		boss.Health, boss.MaxHealth, healthBar(boss.Health, boss.MaxHealth), b.BossWager(), handString(b.BossHand()), value, boss.BustThreshold, boss.StayThreshold)
}

func printState(b *duel.Battle, name string, additionalPanel ...pterm.Panel) {
	header := pterm.Panel{Data: pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprintf("Round %d | %s", b.Round(), b.State())}
	dashboard := []pterm.Panel{{Data: printPlayerInfo(b, name)}}
	dashboard = append(dashboard, additionalPanel...)
	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: printBossInfo(b)}},
		{header},
		dashboard,
	}).Render()
}

// describeEvent turns an event into a single log line, or "" for events that
// need no narration.
func describeEvent(e duel.Event, bossName string) string {
	switch e.Kind {
	case duel.EventRoundStarted:
		return "New round, the deck is reshuffled"
	case duel.EventBetPlaced:
		return fmt.Sprintf("You wager %d", e.Amount)
	case duel.EventPlayerHit:
		return fmt.Sprintf("You draw %s", e.Card)
	case duel.EventSidearmUsed:
		return fmt.Sprintf("You pull your sidearm: %s", e.Card)
	case duel.EventPlayerBusted:
		return fmt.Sprintf("BUST with %d!", e.Amount)
	case duel.EventPlayerStayed:
		return "You stay"
	case duel.EventBossHit:
		return fmt.Sprintf("%s draws %s", bossName, e.Card)
	case duel.EventBossFinished:
		return fmt.Sprintf("%s stands", bossName)
	case duel.EventRoundResolved:
		return describeResult(*e.Result, bossName)
	}
	return ""
}

func describeResult(r duel.RoundResult, bossName string) string {
	switch r.Result {
	case duel.PlayerWin:
		return fmt.Sprintf("You win the round %d to %d, %s takes %d", r.PlayerValue, r.BossValue, bossName, r.BossDamage)
	case duel.BossWin:
		return fmt.Sprintf("%s wins the round %d to %d, you take %d", bossName, r.BossValue, r.PlayerValue, r.PlayerDamage)
	}
	if r.PlayerBust && r.BossBust {
		return fmt.Sprintf("Both bust, everybody takes %d", r.PlayerDamage)
	}
	return fmt.Sprintf("Tie on %d, nobody is hurt", r.PlayerValue)
}

func printEvents(events []duel.Event, bossName string) {
	for _, e := range events {
		line := describeEvent(e, bossName)
		if line == "" {
			continue
		}
		switch e.Kind {
		case duel.EventPlayerBusted:
			pterm.Warning.Println(line)
		case duel.EventRoundResolved:
			if e.Result.Result == duel.BossWin {
				pterm.Error.Println(line)
			} else {
				pterm.Success.Println(line)
			}
		default:
			pterm.Info.Println(line)
		}
	}
}

func printIntermission(tr *run.Tracker, boss duel.BossTemplate) {
	current, total, defeated := tr.Progress()
	p := tr.Player()
	pterm.DefaultSection.Printfln("Boss %d of %d", current+1, total)
	if len(defeated) > 0 {
		pterm.Info.Printfln("Defeated so far: %s", strings.Join(defeated, ", "))
	}
	icon := boss.Icon
	if icon == "" {
		icon = "💀"
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightMagenta(icon+" "+boss.Name)).WithTitleTopCenter().Printfln(
		"%s\nHealth %d | Difficulty %d", boss.Description, boss.Health, boss.Difficulty)
	if p.LowHealth() {
		pterm.Warning.Printfln("Only %d health left, wager carefully", p.Health)
	}
}

func getOutcomePanel(o duel.BattleOutcome) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var title, body string
	switch o.NextScene {
	case duel.SceneRunComplete:
		title = pterm.LightYellow("|RUN COMPLETE|")
		body = pterm.Sprintfln("All %d bosses down! Reputation +%d", o.Total, o.ReputationGain)
	case duel.SceneVictory:
		title = pterm.LightGreen("|VICTORY|")
		body = pterm.Sprintfln("%s beaten in %d rounds (%d/%d)", o.BossID, o.Rounds, o.Defeated, o.Total)
	default:
		title = pterm.LightRed("|GAME OVER|")
		body = pterm.Sprintfln("Fell to %s after %d rounds", o.BossID, o.Rounds)
	}
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)}
}
