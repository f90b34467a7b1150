package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster_Shape(t *testing.T) {
	roster := NewRoster()
	require.Len(t, roster, 8)

	for _, p := range roster {
		require.NoError(t, p.Validate())
	}
	assert.Len(t, AllPets(roster), 9)
	assert.Empty(t, roster[7].Pets, "John Doe has no pets")
}

func TestNewRoster_DeterministicIDs(t *testing.T) {
	a := NewRoster()
	b := NewRoster()

	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		for j := range a[i].Pets {
			assert.Equal(t, a[i].Pets[j].ID, b[i].Pets[j].ID)
		}
	}
	assert.NotEqual(t, a[0].ID, a[1].ID)
	assert.Equal(t, PersonID("Mary", "Smith"), a[0].ID)
}

func TestNewRoster_ReturnsFreshCopies(t *testing.T) {
	a := NewRoster()
	a[0].Pets[0].Name = "Changed"

	assert.Equal(t, "Tabby", NewRoster()[0].Pets[0].Name)
}

func TestFindNamed(t *testing.T) {
	roster := NewRoster()

	mary, err := FindNamed(roster, "Mary Smith")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tabby"}, mary.PetNames())

	_, err = FindNamed(roster, "Nobody Here")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Nobody Here")
}

func TestFindNamed_ReturnsCopy(t *testing.T) {
	roster := NewRoster()
	bob, err := FindNamed(roster, "Bob Smith")
	require.NoError(t, err)

	bob.Pets[0].Age = 99
	assert.Equal(t, 3, roster[1].Pets[0].Age)
}
