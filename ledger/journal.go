package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/luca-patrignani/gunslinger/domain/duel"
)

const genesisKind duel.EventKind = "genesis"

// Entry is one recorded battle event.
type Entry struct {
	Index     int        `json:"index"`
	Timestamp int64      `json:"timestamp"`
	PrevHash  string     `json:"prev_hash"`
	Hash      string     `json:"hash"`
	BattleID  string     `json:"battle_id"`
	Event     duel.Event `json:"event"`
}

type Journal struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
	logger  *slog.Logger
}

// NewJournal creates a journal holding only its genesis entry. A nil logger
// uses slog.Default.
func NewJournal(logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	j := &Journal{
		now:    time.Now,
		logger: logger,
	}
	genesis := Entry{
		Index:     0,
		Timestamp: j.now().UnixNano(),
		PrevHash:  "0",
		Event:     duel.Event{Kind: genesisKind},
	}
	genesis.Hash = calculateHash(genesis)
	j.entries = append(j.entries, genesis)
	return j
}

// Record appends e, emitted by battle battleID.
func (j *Journal) Record(battleID string, e duel.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := j.entries[len(j.entries)-1]
	entry := Entry{
		Index:     latest.Index + 1,
		Timestamp: max(j.now().UnixNano(), latest.Timestamp),
		PrevHash:  latest.Hash,
		BattleID:  battleID,
		Event:     e,
	}
	entry.Hash = calculateHash(entry)

	if err := validateEntry(entry, latest); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	j.entries = append(j.entries, entry)
	return nil
}

// Observer returns a duel.Observer recording every event of battleID.
func (j *Journal) Observer(battleID string) duel.Observer {
	return func(e duel.Event) {
		if err := j.Record(battleID, e); err != nil {
			j.logger.Warn("event not journaled", "battle", battleID, "kind", e.Kind, "err", err)
		}
	}
}

// GetLatest returns the most recent entry.
func (j *Journal) GetLatest() (Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 {
		return Entry{}, fmt.Errorf("journal is empty")
	}
	return j.entries[len(j.entries)-1], nil
}

func (j *Journal) GetByIndex(index int) (*Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.entries) {
		return nil, fmt.Errorf("index out of range")
	}
	return &j.entries[index], nil
}

// Entries returns a copy of the recorded events, genesis excluded.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, len(j.entries)-1)
	copy(out, j.entries[1:])
	return out
}

// Rounds returns the result of every resolved round, oldest first.
func (j *Journal) Rounds() []duel.RoundResult {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []duel.RoundResult
	for _, e := range j.entries {
		if e.Event.Kind == duel.EventRoundResolved && e.Event.Result != nil {
			out = append(out, *e.Event.Result)
		}
	}
	return out
}

// Verify walks the whole journal checking index continuity, hash linkage and
// time order.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 {
		return fmt.Errorf("empty journal")
	}
	if j.entries[0].PrevHash != "0" || j.entries[0].Event.Kind != genesisKind {
		return fmt.Errorf("invalid genesis entry")
	}
	if j.entries[0].Hash != calculateHash(j.entries[0]) {
		return fmt.Errorf("genesis entry hash mismatch")
	}
	for i := 1; i < len(j.entries); i++ {
		if err := validateEntry(j.entries[i], j.entries[i-1]); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	if current.Timestamp < previous.Timestamp {
		return fmt.Errorf("timestamp goes back: %d before %d", current.Timestamp, previous.Timestamp)
	}
	return nil
}

// calculateHash is the SHA256 of the entry's index, timestamp, previous hash,
// battle id and JSON encoded event.
func calculateHash(e Entry) string {
	eventBytes, _ := json.Marshal(e.Event)
	data := fmt.Sprintf("%d%d%s%s%s", e.Index, e.Timestamp, e.PrevHash, e.BattleID, eventBytes)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
