package life

import (
	"slices"
	"testing"
)

func TestNewClampsSize(t *testing.T) {
	g := New(0)
	if g.Size() != 1 {
		t.Fatalf("size = %d, want 1", g.Size())
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("len(cells) = %d, want 1", len(g.Cells()))
	}
}

func TestStateAtOutOfRange(t *testing.T) {
	g := New(4)
	g.SetState(0, 0, Alive)
	cases := [][2]int{{-1, 0}, {0, -1}, {-1, -1}, {4, 0}, {0, 4}, {4, 4}, {100, 100}}
	for _, c := range cases {
		if got := g.StateAt(c[0], c[1]); got != Dead {
			t.Fatalf("StateAt(%d, %d) = %v, want Dead", c[0], c[1], got)
		}
	}
}

func TestSetStateRoundTrip(t *testing.T) {
	g := New(4)
	g.SetState(2, 3, Alive)
	if g.StateAt(2, 3) != Alive {
		t.Fatalf("cell (2, 3) not alive after SetState")
	}
	g.SetState(2, 3, Dead)
	if g.StateAt(2, 3) != Dead {
		t.Fatalf("cell (2, 3) not dead after SetState")
	}
}

func TestSetStateOutOfRangeIgnored(t *testing.T) {
	g := New(4)
	before := slices.Clone(g.Cells())
	g.SetState(-1, 0, Alive)
	g.SetState(0, -1, Alive)
	g.SetState(4, 0, Alive)
	g.SetState(0, 4, Alive)
	if !slices.Equal(g.Cells(), before) {
		t.Fatalf("out-of-range SetState modified the board")
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	g := New(8)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("population = %d after stepping empty board, want 0", g.Population())
	}
}

func TestLoneCellDies(t *testing.T) {
	g := New(5)
	g.SetState(2, 2, Alive)
	g.Step()
	if g.StateAt(2, 2) != Dead {
		t.Fatalf("lone cell survived")
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
}

func TestBlockIsStable(t *testing.T) {
	g := New(6)
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		g.SetState(c[0], c[1], Alive)
	}
	want := slices.Clone(g.Cells())
	for i := 0; i < 10; i++ {
		g.Step()
		if !slices.Equal(g.Cells(), want) {
			t.Fatalf("block changed at generation %d", i+1)
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	g := New(5)
	for _, c := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		g.SetState(c[0], c[1], Alive)
	}
	horizontal := slices.Clone(g.Cells())

	g.Step()
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if g.StateAt(c[0], c[1]) != Alive {
			t.Fatalf("cell (%d, %d) dead in vertical phase", c[0], c[1])
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d in vertical phase, want 3", g.Population())
	}

	g.Step()
	if !slices.Equal(g.Cells(), horizontal) {
		t.Fatalf("blinker did not return to horizontal phase after two steps")
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// A horizontal line hugging the top edge folds into a two-cell column:
	// only the interior cell below is born, since the off-board row reads
	// as dead instead of wrapping to the bottom.
	g := New(5)
	for _, c := range [][2]int{{1, 0}, {2, 0}, {3, 0}} {
		g.SetState(c[0], c[1], Alive)
	}
	g.Step()
	if g.StateAt(2, 0) != Alive || g.StateAt(2, 1) != Alive {
		t.Fatalf("edge blinker did not fold toward the board interior")
	}
	if g.StateAt(2, 4) != Dead {
		t.Fatalf("liveness leaked to the opposite edge")
	}
	if g.Population() != 2 {
		t.Fatalf("population = %d, want 2", g.Population())
	}
}

func TestLoneCenterCellOnTinyBoard(t *testing.T) {
	g := New(3)
	g.SetState(1, 1, Alive)
	g.Step()
	if g.StateAt(1, 1) != Dead {
		t.Fatalf("lone center cell survived on 3x3 board")
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
}

func TestCenterOfThreeByThree(t *testing.T) {
	// Dead center cell with exactly three live neighbors is born.
	g := New(3)
	for _, c := range [][2]int{{0, 0}, {2, 0}, {1, 2}} {
		g.SetState(c[0], c[1], Alive)
	}
	g.Step()
	if g.StateAt(1, 1) != Alive {
		t.Fatalf("center cell with three neighbors was not born")
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(16)
	b := New(16)
	a.Reset(42)
	b.Reset(42)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("same seed produced different boards")
	}

	b.Reset(43)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("different seeds produced identical boards")
	}
}

func TestResetOverwritesBoard(t *testing.T) {
	g := New(16)
	g.Reset(7)
	first := slices.Clone(g.Cells())
	g.Step()
	g.Step()
	g.Reset(7)
	if !slices.Equal(g.Cells(), first) {
		t.Fatalf("replaying the seed did not restore the initial soup")
	}
	if len(g.Cells()) != 16*16 {
		t.Fatalf("len(cells) = %d after reset, want %d", len(g.Cells()), 16*16)
	}
}

func TestRandomizeContinuesStream(t *testing.T) {
	a := New(16)
	b := New(16)
	a.Reset(9)
	b.Reset(9)
	a.Randomize()
	b.Randomize()
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("same seed and call sequence produced different boards")
	}

	a.Reset(9)
	first := slices.Clone(a.Cells())
	a.Randomize()
	if slices.Equal(a.Cells(), first) {
		t.Fatalf("second Randomize repeated the first soup instead of continuing the stream")
	}
}

func TestResetPopulationRoughlyHalf(t *testing.T) {
	g := New(64)
	g.Reset(1)
	pop := g.Population()
	total := 64 * 64
	if pop < total/3 || pop > 2*total/3 {
		t.Fatalf("population = %d of %d, want roughly half", pop, total)
	}
}

func TestFingerprint(t *testing.T) {
	a := New(8)
	b := New(8)
	a.Reset(5)
	b.Reset(5)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("identical boards hashed differently")
	}
	b.SetState(0, 0, invert(b.StateAt(0, 0)))
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("fingerprint did not change after flipping a cell")
	}
}

func invert(s State) State {
	if s == Alive {
		return Dead
	}
	return Alive
}
