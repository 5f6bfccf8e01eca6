package ledger

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/gunslinger/domain/deck"
	"github.com/luca-patrignani/gunslinger/domain/duel"
)

func quietJournal() *Journal {
	return NewJournal(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewJournal(t *testing.T) {
	j := quietJournal()
	genesis, err := j.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, 0, genesis.Index)
	assert.Equal(t, "0", genesis.PrevHash)
	assert.NotEmpty(t, genesis.Hash)
	assert.Empty(t, j.Entries())
	assert.NoError(t, j.Verify())
}

func TestRecordChainsEntries(t *testing.T) {
	j := quietJournal()
	require.NoError(t, j.Record("b1", duel.Event{Kind: duel.EventRoundStarted}))
	require.NoError(t, j.Record("b1", duel.Event{Kind: duel.EventBetPlaced, Round: 1, Amount: 3}))

	entries := j.Entries()
	require.Len(t, entries, 2)
	genesis, err := j.GetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, genesis.Hash, entries[0].PrevHash)
	assert.Equal(t, entries[0].Hash, entries[1].PrevHash)
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, "b1", entries[1].BattleID)
	assert.Equal(t, 3, entries[1].Event.Amount)

	latest, err := j.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, entries[1], latest)
	assert.NoError(t, j.Verify())
}

func TestGetByIndexOutOfRange(t *testing.T) {
	j := quietJournal()
	_, err := j.GetByIndex(-1)
	assert.Error(t, err)
	_, err = j.GetByIndex(1)
	assert.Error(t, err)
}

func TestTimestampsNeverGoBack(t *testing.T) {
	j := quietJournal()
	base := time.Now()
	times := []time.Time{base.Add(time.Hour), base}
	j.now = func() time.Time {
		next := times[0]
		times = times[1:]
		return next
	}
	require.NoError(t, j.Record("b", duel.Event{Kind: duel.EventRoundStarted}))
	require.NoError(t, j.Record("b", duel.Event{Kind: duel.EventBetPlaced}))

	entries := j.Entries()
	assert.LessOrEqual(t, entries[0].Timestamp, entries[1].Timestamp)
	assert.NoError(t, j.Verify())
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(e *Entry)
	}{
		{"event", func(e *Entry) { e.Event.Amount = 99 }},
		{"battle", func(e *Entry) { e.BattleID = "other" }},
		{"index", func(e *Entry) { e.Index = 7 }},
		{"prev hash", func(e *Entry) { e.PrevHash = "bad" }},
		{"timestamp", func(e *Entry) { e.Timestamp = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := quietJournal()
			for i := 1; i <= 3; i++ {
				require.NoError(t, j.Record("b", duel.Event{Kind: duel.EventBetPlaced, Amount: i}))
			}
			e, err := j.GetByIndex(2)
			require.NoError(t, err)
			tt.tamper(e)
			assert.Error(t, j.Verify())
		})
	}
}

func TestJournalObservesBattle(t *testing.T) {
	j := quietJournal()
	rules := duel.DefaultRules()
	rules.ImmediateResolution = true
	b := duel.NewBattle(
		duel.WithID("duel-1"),
		duel.WithRules(rules),
		duel.WithSource(deck.NewSeededSource(3)),
		duel.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		duel.WithObserver(j.Observer("duel-1")),
	)

	var emitted []duel.Event
	events, err := b.Initialize(21, 21, nil)
	require.NoError(t, err)
	emitted = append(emitted, events...)
	for i := 0; i < 1000 && b.State() != duel.BattleEnd; i++ {
		events, err = b.PlaceBet(b.MinWager())
		require.NoError(t, err)
		emitted = append(emitted, events...)
		events, err = b.PlayerStay()
		require.NoError(t, err)
		emitted = append(emitted, events...)
	}
	require.Equal(t, duel.BattleEnd, b.State())

	entries := j.Entries()
	require.Len(t, entries, len(emitted))
	var resolved int
	for i, e := range entries {
		assert.Equal(t, "duel-1", e.BattleID)
		assert.Equal(t, emitted[i].Kind, e.Event.Kind)
		if e.Event.Kind == duel.EventRoundResolved {
			resolved++
		}
	}
	assert.Len(t, j.Rounds(), resolved)
	assert.Equal(t, b.Round(), resolved)

	latest, err := j.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, duel.EventBattleEnded, latest.Event.Kind)
	assert.NoError(t, j.Verify())
}
