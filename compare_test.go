package uuid

import (
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	uuid1 := UUID{0x01}
	uuid2 := UUID{0x02}
	uuid3 := UUID{0x01}

	if uuid1.Compare(uuid2) != -1 {
		t.Error("uuid1 should be less than uuid2")
	}

	if uuid2.Compare(uuid1) != 1 {
		t.Error("uuid2 should be greater than uuid1")
	}

	if uuid1.Compare(uuid3) != 0 {
		t.Error("uuid1 should be equal to uuid3")
	}

	if !uuid1.Less(uuid2) || uuid2.Less(uuid1) || uuid1.Less(uuid3) {
		t.Error("Less() disagrees with Compare()")
	}
}

// signedCompare orders the two halves as signed 64-bit integers, the way
// java.util.UUID.compareTo does.
func signedCompare(a, b UUID) int {
	am, al := a.Halves()
	bm, bl := b.Halves()
	switch {
	case int64(am) < int64(bm):
		return -1
	case int64(am) > int64(bm):
		return 1
	case int64(al) < int64(bl):
		return -1
	case int64(al) > int64(bl):
		return 1
	}
	return 0
}

func TestCompare_Unsigned(t *testing.T) {
	first := MustParse("20000000-0000-4000-8000-000000000000")
	second := MustParse("e0000000-0000-4000-8000-000000000000")

	if Compare(first, second) >= 0 {
		t.Errorf("Compare(%v, %v) >= 0", first, second)
	}
	if signedCompare(first, second) <= 0 {
		t.Fatal("signed comparison was expected to misorder the pair")
	}

	ids := []UUID{second, Max, first, Nil}
	Sort(ids)
	want := []UUID{Nil, first, second, Max}
	if !slices.Equal(ids, want) {
		t.Errorf("Sort() = %v, want %v", ids, want)
	}

	control := []UUID{Nil, first, second}
	slices.SortFunc(control, signedCompare)
	if !slices.Equal(control, []UUID{second, Nil, first}) {
		t.Errorf("signed sort = %v", control)
	}
}

func TestCompare_Contract(t *testing.T) {
	examples := []UUID{
		Nil,
		MustParse("00000000-0000-0000-0000-000000000001"),
		MustParse("00000000-0000-0000-8000-000000000000"),
		MustParse("20000000-0000-4000-8000-000000000000"),
		MustParse("7fffffff-ffff-ffff-ffff-ffffffffffff"),
		MustParse("80000000-0000-0000-0000-000000000000"),
		MustParse("e0000000-0000-4000-8000-000000000000"),
		Max,
	}

	for i, a := range examples {
		for j, b := range examples {
			ab, ba := Compare(a, b), Compare(b, a)
			// antisymmetry
			if ab != -ba {
				t.Errorf("Compare(%v, %v) = %d but Compare(%v, %v) = %d", a, b, ab, b, a, ba)
			}
			// consistent with equality
			if (ab == 0) != (a == b) {
				t.Errorf("Compare(%v, %v) = %d, equality = %v", a, b, ab, a == b)
			}
			// examples are listed in ascending order
			if want := cmpInt(i, j); ab != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", a, b, ab, want)
			}
			// transitivity
			for _, c := range examples {
				if ab < 0 && Compare(b, c) < 0 && Compare(a, c) >= 0 {
					t.Errorf("transitivity violated for %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
