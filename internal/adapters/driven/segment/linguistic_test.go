package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinguistic_KeepsEtAlTogether(t *testing.T) {
	l := NewLinguistic()
	got := l.Split("Smith et al. reported amyloid clearance. Replication followed.")
	assert.Equal(t, []string{
		"Smith et al. reported amyloid clearance.",
		"Replication followed.",
	}, got)
}

func TestLinguistic_KeepsInitialsTogether(t *testing.T) {
	l := NewLinguistic()
	got := l.Split("J. Doe led the trial. Results were mixed.")
	assert.Equal(t, []string{
		"J. Doe led the trial.",
		"Results were mixed.",
	}, got)
}

func TestLinguistic_KeepsFigureReferencesTogether(t *testing.T) {
	l := NewLinguistic()
	got := l.Split("Plaque density rose, see Fig. 3 for detail. Tangles followed.")
	assert.Equal(t, []string{
		"Plaque density rose, see Fig. 3 for detail.",
		"Tangles followed.",
	}, got)
}

func TestLinguistic_PlainSentencesMatchSimple(t *testing.T) {
	l := NewLinguistic()
	s := NewSimple()
	text := "Amyloid accumulates. Tau spreads. Neurons die."
	assert.Equal(t, s.Split(text), l.Split(text))
}

func TestLinguistic_TrailingAbbreviation(t *testing.T) {
	l := NewLinguistic()
	got := l.Split("Confirmed by Smith et al.")
	assert.Equal(t, []string{"Confirmed by Smith et al."}, got)
}

func TestLinguistic_BlankInput(t *testing.T) {
	l := NewLinguistic()
	assert.Nil(t, l.Split(""))
}
