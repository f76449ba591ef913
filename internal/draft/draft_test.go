package draft

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jmaydwell1/eliteprep/internal/types"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMergeLastWriteWins(t *testing.T) {
	s := NewSession()

	s.Merge(Patch{Email: strPtr("first@example.com")})
	s.Merge(Patch{Email: strPtr("second@example.com"), Name: strPtr("Jordan")})

	d := s.Draft()
	if d.Email != "second@example.com" {
		t.Errorf("Email = %q, want %q", d.Email, "second@example.com")
	}
	if d.Name != "Jordan" {
		t.Errorf("Name = %q, want %q", d.Name, "Jordan")
	}
}

func TestMergeNilFieldsUntouched(t *testing.T) {
	s := NewSession()
	s.Merge(Patch{Email: strPtr("user@example.com"), Handicap: intPtr(12)})

	// A patch touching only the name must not disturb other fields.
	s.Merge(Patch{Name: strPtr("Jordan")})

	d := s.Draft()
	if d.Email != "user@example.com" {
		t.Errorf("Email = %q, want unchanged", d.Email)
	}
	if d.Handicap == nil || *d.Handicap != 12 {
		t.Errorf("Handicap = %v, want 12", d.Handicap)
	}
}

func TestMergeSportReplacedWholesale(t *testing.T) {
	s := NewSession()
	s.Merge(Patch{Sport: []string{"Tennis"}})
	s.Merge(Patch{Sport: []string{"Golf"}})

	d := s.Draft()
	if len(d.Sport) != 1 || d.Sport[0] != "Golf" {
		t.Errorf("Sport = %v, want [Golf]", d.Sport)
	}
}

func TestDraftSnapshotIsolated(t *testing.T) {
	s := NewSession()
	s.Merge(Patch{Sport: []string{"Golf"}})

	d := s.Draft()
	d.Sport[0] = "Tennis"

	if got := s.Draft().Sport[0]; got != "Golf" {
		t.Errorf("session sport = %q after mutating snapshot, want %q", got, "Golf")
	}
}

func TestMissing(t *testing.T) {
	s := NewSession()

	missing := s.Missing(RequiredProfileFields)
	if len(missing) != len(RequiredProfileFields) {
		t.Errorf("empty draft missing %d fields, want %d", len(missing), len(RequiredProfileFields))
	}

	birthdate := time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC)
	gender := types.GenderFemale
	status := types.StatusIntermediate
	s.Merge(Patch{
		Email:          strPtr("user@example.com"),
		Name:           strPtr("Jordan"),
		Birthdate:      &birthdate,
		Gender:         &gender,
		City:           strPtr("Austin"),
		State:          strPtr("Texas"),
		Sport:          []string{"Golf"},
		AthleticStatus: &status,
		Handicap:       intPtr(8),
	})

	if missing := s.Missing(RequiredProfileFields); len(missing) != 0 {
		t.Errorf("complete draft missing = %v, want none", missing)
	}
	if missing := s.Missing(RequiredGoalFields); len(missing) != 2 {
		t.Errorf("goal fields missing = %v, want both", missing)
	}
}

// A selected handicap of 0 is a real answer, not an absent one.
func TestMissingHandicapZeroIsPresent(t *testing.T) {
	s := NewSession()
	s.Merge(Patch{Handicap: intPtr(0)})

	for _, f := range s.Missing(RequiredProfileFields) {
		if f == FieldHandicap {
			t.Error("handicap 0 reported as missing")
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSession()
	s.Merge(Patch{Email: strPtr("user@example.com"), Sport: []string{"Golf"}})
	s.Reset()

	d := s.Draft()
	if d.Email != "" || d.Sport != nil {
		t.Errorf("Reset left data behind: %+v", d)
	}
}

func TestProfile(t *testing.T) {
	birthdate := time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC)
	d := Draft{
		Email:          "user@example.com",
		Name:           "Jordan",
		Birthdate:      &birthdate,
		Gender:         types.GenderMale,
		City:           "Austin",
		State:          "Texas",
		Sport:          []string{"Golf"},
		AthleticStatus: types.StatusAdvanced,
		Handicap:       intPtr(4),
		Expectation:    "Consistency",
		Goal:           "Scratch golf",
	}

	p := d.Profile()
	if p.Handicap != 4 {
		t.Errorf("Handicap = %d, want 4", p.Handicap)
	}
	if p.Email != d.Email || p.Name != d.Name || p.City != d.City {
		t.Errorf("Profile() dropped fields: %+v", p)
	}
	if p.Birthdate == nil || !p.Birthdate.Equal(birthdate) {
		t.Errorf("Birthdate = %v, want %v", p.Birthdate, birthdate)
	}

	// Absent handicap falls back to zero on the wire.
	d.Handicap = nil
	if got := d.Profile().Handicap; got != 0 {
		t.Errorf("Handicap with nil pointer = %d, want 0", got)
	}
}

// The handicap is collected as a selection string but must serialize as a
// JSON number across the whole selectable range.
func TestProfileHandicapSerializesAsInteger(t *testing.T) {
	for _, selection := range []string{"0", "1", "27", "54"} {
		n, err := strconv.Atoi(selection)
		if err != nil {
			t.Fatalf("Atoi(%q) error = %v", selection, err)
		}

		data, err := json.Marshal(Draft{Handicap: &n}.Profile())
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		var decoded struct {
			Handicap int `json:"handicap"`
		}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if decoded.Handicap != n {
			t.Errorf("handicap %q round-tripped to %d", selection, decoded.Handicap)
		}

		want := fmt.Sprintf(`"handicap":%s`, selection)
		if !strings.Contains(string(data), want) {
			t.Errorf("body %s missing %s", data, want)
		}
	}
}
