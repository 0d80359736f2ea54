package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var order = []string{"event", "pickup", "return", "notes"}

func TestInitial(t *testing.T) {
	s := Initial(order)

	require.Len(t, s.Sections, 4)
	assert.Equal(t, "event", s.OpenSection())
	assert.True(t, s.Sections[0].Enabled)
	assert.False(t, s.Sections[1].Enabled)
}

func TestNext_EnablesSectionsInOrder(t *testing.T) {
	s := Next(Initial(order), order, map[string]bool{
		"event":  true,
		"pickup": false,
		"return": true,
		"notes":  true,
	})

	assert.True(t, s.Sections[0].Enabled)
	assert.True(t, s.Sections[1].Enabled)
	assert.False(t, s.Sections[2].Enabled, "return must stay hidden while pickup is incomplete")
	assert.False(t, s.Sections[3].Enabled)
	assert.Equal(t, "pickup", s.OpenSection())
}

func TestNext_AdvancesWhenOpenSectionCompletes(t *testing.T) {
	s := Initial(order)

	s = Next(s, order, map[string]bool{"event": false})
	assert.Equal(t, "event", s.OpenSection())

	s = Next(s, order, map[string]bool{"event": true})
	assert.Equal(t, "pickup", s.OpenSection())
}

func TestNext_KeepsUserChoiceWhileEnabled(t *testing.T) {
	all := map[string]bool{"event": true, "pickup": true, "return": true, "notes": true}
	s := Next(Initial(order), order, all)

	s, ok := Open(s, "event")
	require.True(t, ok)

	s = Next(s, order, all)
	assert.Equal(t, "event", s.OpenSection())
}

func TestNext_CollapsesWhenOpenSectionGetsDisabled(t *testing.T) {
	all := map[string]bool{"event": true, "pickup": true, "return": true, "notes": true}
	s := Next(Initial(order), order, all)
	s, ok := Open(s, "return")
	require.True(t, ok)

	s = Next(s, order, map[string]bool{"event": false, "pickup": true, "return": true, "notes": true})

	assert.Equal(t, "event", s.OpenSection())
	for _, section := range s.Sections[1:] {
		assert.False(t, section.Enabled, section.Name)
	}
}

func TestNext_IsPure(t *testing.T) {
	prev := Initial(order)
	snapshot := Initial(order)
	validations := map[string]bool{"event": true, "pickup": true}

	first := Next(prev, order, validations)
	second := Next(prev, order, validations)

	assert.True(t, first.Equal(second))
	assert.True(t, prev.Equal(snapshot))
}

func TestNext_ExactlyOneOpenSection(t *testing.T) {
	s := Initial(order)
	steps := []map[string]bool{
		{"event": true},
		{"event": true, "pickup": true},
		{"event": false, "pickup": true},
		{"event": true, "pickup": true, "return": true, "notes": true},
	}
	for _, v := range steps {
		s = Next(s, order, v)
		open := 0
		for _, section := range s.Sections {
			if section.Open {
				open++
				assert.True(t, section.Enabled, section.Name)
			}
		}
		assert.Equal(t, 1, open)
	}
}

func TestOpen_RejectsDisabledOrUnknown(t *testing.T) {
	s := Initial(order)

	got, ok := Open(s, "notes")
	assert.False(t, ok)
	assert.True(t, got.Equal(s))

	_, ok = Open(s, "payment")
	assert.False(t, ok)
}
