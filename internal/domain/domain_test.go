package domain

import "testing"

func TestCanonicalPairOrders(t *testing.T) {
	a, b := CanonicalPair(9, 4)
	if a != 4 || b != 9 {
		t.Fatalf("got (%d,%d), want (4,9)", a, b)
	}
	a, b = CanonicalPair(4, 9)
	if a != 4 || b != 9 {
		t.Fatalf("got (%d,%d), want (4,9)", a, b)
	}
}

func TestMatchHasUser(t *testing.T) {
	m := &Match{User1ID: 4, User2ID: 9}

	if !m.HasUser(4) || !m.HasUser(9) {
		t.Fatalf("participants must be recognized")
	}
	if m.HasUser(5) {
		t.Fatalf("outsider must not be a participant")
	}
}

func TestSwipeActionValid(t *testing.T) {
	for _, action := range []SwipeAction{ActionLike, ActionPass, ActionSuperLike} {
		if !action.Valid() {
			t.Fatalf("%s should be valid", action)
		}
	}
	if SwipeAction("wink").Valid() {
		t.Fatalf("unknown action should be invalid")
	}
}

func TestSwipeActionIsLike(t *testing.T) {
	if !ActionLike.IsLike() || !ActionSuperLike.IsLike() {
		t.Fatalf("like and super_like count as likes")
	}
	if ActionPass.IsLike() {
		t.Fatalf("pass is not a like")
	}
}

func TestProfileDefaults(t *testing.T) {
	p := &Profile{}

	min, max := p.AgeRange()
	if min != DefaultAgeRangeMin || max != DefaultAgeRangeMax {
		t.Fatalf("got range (%d,%d)", min, max)
	}
	if p.MaxDistance() != DefaultMaxDistanceKm {
		t.Fatalf("got distance %d", p.MaxDistance())
	}

	lo, hi, km := 25, 35, 10
	p.AgeRangeMin, p.AgeRangeMax, p.MaxDistanceKm = &lo, &hi, &km
	min, max = p.AgeRange()
	if min != 25 || max != 35 || p.MaxDistance() != 10 {
		t.Fatalf("explicit preferences ignored: (%d,%d,%d)", min, max, p.MaxDistance())
	}
}

func TestProfileAccepts(t *testing.T) {
	p := &Profile{LookingFor: []string{"female", "non_binary"}}

	if !p.Accepts("female") || !p.Accepts("non_binary") {
		t.Fatalf("listed genders must be accepted")
	}
	if p.Accepts("male") {
		t.Fatalf("unlisted gender must be rejected")
	}
	if (&Profile{}).Accepts("female") {
		t.Fatalf("empty looking_for accepts nobody")
	}
}
