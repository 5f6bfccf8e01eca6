package run

import "github.com/luca-patrignani/gunslinger/domain/duel"

// DefaultBosses returns the six opponents of the standard campaign, easiest
// first. Every call returns a fresh slice.
func DefaultBosses() []duel.BossTemplate {
	return []duel.BossTemplate{
		{
			ID:            "sand_baron",
			Name:          "Sand Baron",
			Icon:          "🏜️",
			Description:   "Runs the dune crossings and folds early",
			Health:        15,
			BustThreshold: 21,
			StayThreshold: 16,
			WagerSchedule: []int{1, 2, 3, 5, 7, 9},
			Difficulty:    1,
		},
		{
			ID:            duel.DefaultBoss.ID,
			Name:          duel.DefaultBoss.Name,
			Icon:          "⚡",
			Description:   duel.DefaultBoss.Description,
			Health:        duel.DefaultBoss.Health,
			BustThreshold: duel.DefaultBustThreshold,
			StayThreshold: duel.DefaultStayThreshold,
			WagerSchedule: []int{2, 3, 5, 7, 10, 13},
			Difficulty:    2,
		},
		{
			ID:            "blade_widow",
			Name:          "Blade Widow",
			Icon:          "⚔️",
			Description:   "Never stops short of eighteen",
			Health:        22,
			BustThreshold: 22,
			StayThreshold: 18,
			WagerSchedule: []int{2, 4, 6, 8, 10, 12},
			Difficulty:    3,
		},
		{
			ID:            "chrome_king",
			Name:          "Chrome King",
			Icon:          "👑",
			Description:   "His crown lets him hold hands nobody else could",
			Health:        25,
			BustThreshold: 23,
			StayThreshold: 19,
			WagerSchedule: []int{3, 4, 6, 8, 11, 14},
			Difficulty:    4,
		},
		{
			ID:            "the_reflection",
			Name:          "The Reflection",
			Icon:          "🪞",
			Description:   "Plays your own rules, only meaner",
			Health:        21,
			BustThreshold: 21,
			StayThreshold: 17,
			WagerSchedule: []int{2, 3, 5, 8, 13, 21},
			Difficulty:    5,
		},
		{
			ID:            "the_reaper",
			Name:          "The Reaper",
			Icon:          "💀",
			Description:   "Draws to twenty and only breaks past twenty-four",
			Health:        30,
			BustThreshold: 24,
			StayThreshold: 20,
			WagerSchedule: []int{3, 5, 8, 12, 16, 20},
			Difficulty:    6,
		},
	}
}
