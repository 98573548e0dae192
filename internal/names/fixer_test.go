package names

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRoster struct {
	teamCalls   int
	rosterCalls int
	roster      []string
	err         error
}

func (f *fakeRoster) LookupTeam(_ context.Context, name string) (int, error) {
	f.teamCalls++
	if f.err != nil {
		return 0, f.err
	}
	return 121, nil
}

func (f *fakeRoster) PitchingRoster(_ context.Context, _ int) ([]string, error) {
	f.rosterCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

func TestFix_CleanNamePassesThroughWithoutLookup(t *testing.T) {
	src := &fakeRoster{}
	f := NewFixer(src)

	got := f.Fix(context.Background(), "Miami Marlins", "Sandy Alcantara")
	assert.Equal(t, "Sandy Alcantara", got)
	assert.Zero(t, src.teamCalls)
}

func TestFix_RepairsMangledAccentedName(t *testing.T) {
	src := &fakeRoster{roster: []string{"Edward Cabrera", "Jesús Luzardo"}}
	f := NewFixer(src)

	got := f.Fix(context.Background(), "Miami Marlins", "Jes�s Luzardo")
	assert.Equal(t, "Jesús Luzardo", got)
}

func TestFix_CachesRepairs(t *testing.T) {
	src := &fakeRoster{roster: []string{"Jesús Luzardo"}}
	f := NewFixer(src)

	f.Fix(context.Background(), "Miami Marlins", "Jes�s Luzardo")
	f.Fix(context.Background(), "Miami Marlins", "Jes�s Luzardo")
	assert.Equal(t, 1, src.rosterCalls)
}

func TestFix_NoMatchReturnsInput(t *testing.T) {
	src := &fakeRoster{roster: []string{"Edward Cabrera"}}
	f := NewFixer(src)

	got := f.Fix(context.Background(), "Miami Marlins", "Jes�s Luzardo")
	assert.Equal(t, "Jes�s Luzardo", got)
}

func TestFix_LookupFailureReturnsInput(t *testing.T) {
	src := &fakeRoster{err: errors.New("service down")}
	f := NewFixer(src)

	got := f.Fix(context.Background(), "Miami Marlins", "Jes�s Luzardo")
	assert.Equal(t, "Jes�s Luzardo", got)
}
