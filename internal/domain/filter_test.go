package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCongressFilter_SetLineClearsSubline(t *testing.T) {
	t.Parallel()

	f := CongressFilter{Categorias: []string{"A"}, Linea: "L1", Sublinea: "S1"}

	next, err := f.Set(FieldLinea, "L2")
	require.NoError(t, err)

	assert.Equal(t, "L2", next.Linea)
	assert.Empty(t, next.Sublinea)
	assert.Equal(t, []string{"A"}, next.Categorias)
	assert.Equal(t, "S1", f.Sublinea, "receiver must not change")
}

func TestCongressFilter_CategoryChangeClearsLineAndSubline(t *testing.T) {
	t.Parallel()

	f := CongressFilter{Categorias: []string{"A"}, Linea: "L1", Sublinea: "S1", Country: "PE"}

	toggled := f.ToggleCategory("B")
	assert.Equal(t, []string{"A", "B"}, toggled.Categorias)
	assert.Empty(t, toggled.Linea)
	assert.Empty(t, toggled.Sublinea)
	assert.Equal(t, "PE", toggled.Country)

	set, err := f.Set(FieldCategoria, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, set.Categorias)
	assert.Empty(t, set.Linea)

	removed, err := f.Remove(FieldCategoria, "A")
	require.NoError(t, err)
	assert.Empty(t, removed.Categorias)
	assert.Empty(t, removed.Linea)
	assert.Empty(t, removed.Sublinea)

	assert.Equal(t, []string{"A"}, f.Categorias)
	assert.Equal(t, "L1", f.Linea)
}

func TestCongressFilter_ToggleCategoryTwiceRemoves(t *testing.T) {
	t.Parallel()

	f := CongressFilter{}.ToggleCategory("A").ToggleCategory("B").ToggleCategory("A")
	assert.Equal(t, []string{"B"}, f.Categorias)
}

func TestCongressFilter_SetCategoriesDedupes(t *testing.T) {
	t.Parallel()

	f := CongressFilter{}.SetCategories([]string{"A", "B", "A", ""})
	assert.Equal(t, []string{"A", "B"}, f.Categorias)
}

func TestCongressFilter_ToggleCareer(t *testing.T) {
	t.Parallel()

	f := CongressFilter{}.ToggleCareer("economia").ToggleCareer("derecho")
	assert.Equal(t, []string{"economia", "derecho"}, f.Careers)

	f = f.ToggleCareer("economia")
	assert.Equal(t, []string{"derecho"}, f.Careers)

	f = f.ToggleCareer("")
	assert.Empty(t, f.Careers)
}

func TestCongressFilter_UnknownField(t *testing.T) {
	t.Parallel()

	f := CongressFilter{Country: "PE"}
	next, err := f.Set(FieldPublisher, "Nature")

	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, f, next)
}

func TestCongressFilter_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, CongressFilter{}.IsEmpty())
	assert.True(t, CongressFilter{Search: "  "}.IsEmpty())
	assert.False(t, CongressFilter{Search: "ai"}.IsEmpty())
	assert.False(t, CongressFilter{Careers: []string{"derecho"}}.IsEmpty())
	assert.True(t, CongressFilter{Country: "PE"}.Reset().IsEmpty())
}

func TestCongressFilter_Chips(t *testing.T) {
	t.Parallel()

	f := CongressFilter{
		Search:     "ignored",
		Country:    "PE",
		Categorias: []string{"GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO"},
		Modality:   ModalityVirtual,
		Indexation: IndexScopus,
	}

	assert.Equal(t, []Chip{
		{Field: FieldCountry, Value: "PE", Label: "PE"},
		{Field: FieldCategoria, Value: "GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO", Label: "Gestión Y Economía Del Conocimiento"},
		{Field: FieldModality, Value: "Virtual", Label: "Virtual"},
		{Field: FieldIndexation, Value: "Scopus", Label: "Scopus"},
	}, f.Chips())
}

func TestCongressFilter_RemoveChip(t *testing.T) {
	t.Parallel()

	f := CongressFilter{Country: "PE", Modality: ModalityHybrid}
	for _, chip := range f.Chips() {
		var err error
		f, err = f.Remove(chip.Field, chip.Value)
		require.NoError(t, err)
	}
	assert.True(t, f.IsEmpty())
}

func TestJournalFilter(t *testing.T) {
	t.Parallel()

	f, err := JournalFilter{}.Set(FieldPublisher, "Nature")
	require.NoError(t, err)
	f, err = f.Set(FieldDisciplina, "Biología")
	require.NoError(t, err)

	assert.Len(t, f.Chips(), 2)
	assert.False(t, f.IsEmpty())

	f, err = f.Remove(FieldPublisher)
	require.NoError(t, err)
	assert.Empty(t, f.Publisher)
	assert.Equal(t, "Biología", f.Disciplina)

	_, err = f.Set(FieldCountry, "PE")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, f.Reset().IsEmpty())
}
