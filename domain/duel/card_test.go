package duel

import (
	"testing"

	"github.com/pterm/pterm"
)

func TestConvertCard(t *testing.T) {
	expectedCard := Card{suit: Bolt, rank: 5}
	testCard, err := IntToCard(28)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
	if CardToInt(testCard) != 28 {
		t.Fatalf("expected 28, got %d", CardToInt(testCard))
	}
}

func TestAllCardConvert(t *testing.T) {
	seen := make(map[Card]bool)
	for i := 1; i <= DeckSize; i++ {
		c, err := IntToCard(i)
		if err != nil {
			t.Fatal(err)
		}
		if seen[c] {
			t.Fatalf("card %d maps to an already seen card %v", i, c)
		}
		seen[c] = true
	}
	for _, bad := range []int{0, -1, DeckSize + 1} {
		if _, err := IntToCard(bad); err == nil {
			t.Fatalf("expected error for %d", bad)
		}
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Skull, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCard(Gear, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCard(4, 1); err == nil {
		t.Fatal("expected error for suit 4")
	}
	if _, err := NewCard(Sun, 11); err == nil {
		t.Fatal("expected error for rank 11")
	}
}

func TestCardString(t *testing.T) {
	c := Card{suit: Bolt, rank: 7}
	if s := pterm.RemoveColorFromString(c.String()); s != "7⚡" {
		t.Fatalf("expected 7⚡, got %s", s)
	}
	c = Card{suit: Gear, rank: 0}
	if s := pterm.RemoveColorFromString(c.String()); s != "0⚙" {
		t.Fatalf("expected 0⚙, got %s", s)
	}
}

func TestCardMarshalJSON(t *testing.T) {
	b, err := Card{suit: Sun, rank: 9}.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"suit":"sun","rank":9}` {
		t.Fatalf("unexpected json %s", b)
	}
}
