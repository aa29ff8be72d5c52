package wall

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brickAndWool(t *testing.T) (MainMaterial, Material) {
	t.Helper()
	brick, err := NewMainMaterial("brick", 0.51, 0.6)
	require.NoError(t, err)
	wool, err := NewMaterial("mineral wool", 0.04)
	require.NoError(t, err)
	return brick, wool
}

func TestWall(t *testing.T) {
	brick, _ := brickAndWool(t)

	w, err := NewWall(5, 3.1, &brick)
	require.NoError(t, err)

	assert.Equal(t, 5.0, w.Length())
	assert.Equal(t, 3.1, w.Height())
	assert.Equal(t, 15.5, w.Area())
	assert.Equal(t, Volume{"brick": 9.3}, w.TotalMaterialVolume())
	assert.Equal(t, []Volume{{"brick": 9.3}}, w.MaterialVolumes())

	// repeated queries are stable
	assert.Equal(t, w.Area(), w.Area())
	assert.Equal(t, w.TotalMaterialVolume(), w.TotalMaterialVolume())
}

func TestNewWall_RejectsMissingMainMaterial(t *testing.T) {
	_, err := NewWall(5, 3.1, nil)
	assert.Equal(t, TypeKind, KindOf(err))

	_, err = NewWall(5, 3.1, &MainMaterial{})
	assert.Equal(t, TypeKind, KindOf(err))

	brick, _ := brickAndWool(t)
	_, err = NewWall(math.NaN(), 3.1, &brick)
	assert.Equal(t, TypeKind, KindOf(err))
}

func TestWall_KeepsItsOwnCopy(t *testing.T) {
	brick, _ := brickAndWool(t)
	w, err := NewWall(5, 3.1, &brick)
	require.NoError(t, err)

	brick, err = brick.WithThickness(0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.6, w.MainMaterial().Thickness())
}

func TestInsulatedWall(t *testing.T) {
	brick, wool := brickAndWool(t)

	w, err := NewInsulatedWall(6, 3, &brick, &wool)
	require.NoError(t, err)

	assert.Equal(t, 18.0, w.Area())
	assert.Equal(t, RequiredResistance, w.RequiredResistance())
	assert.Equal(t, 0.07, w.RequiredInsulationThickness())
	assert.Equal(t, Volume{"mineral wool": 1.26}, w.InsulatorVolume())
	assert.Equal(t, []Volume{{"brick": 10.8}, {"mineral wool": 1.26}}, w.TotalMaterialVolume())
	assert.Equal(t, w.TotalMaterialVolume(), w.MaterialVolumes())
}

func TestInsulatedWall_RejectsMissingInsulator(t *testing.T) {
	brick, _ := brickAndWool(t)

	_, err := NewInsulatedWall(6, 3, &brick, nil)
	assert.Equal(t, TypeKind, KindOf(err))

	_, err = NewInsulatedWall(6, 3, &brick, &Material{})
	assert.Equal(t, TypeKind, KindOf(err))

	_, wool := brickAndWool(t)
	_, err = NewInsulatedWall(6, 3, nil, &wool)
	assert.Equal(t, TypeKind, KindOf(err))
}

func TestInsulatedWall_NegativeThicknessIsNotClamped(t *testing.T) {
	thick, err := NewMainMaterial("aerated concrete", 0.1, 0.5)
	require.NoError(t, err)
	_, wool := brickAndWool(t)

	w, err := NewInsulatedWall(6, 3, &thick, &wool)
	require.NoError(t, err)

	// (2.99 - 0.1149 - 5 - 0.0435) * 0.04 = -0.0867
	assert.Equal(t, -0.09, w.RequiredInsulationThickness())
	assert.Equal(t, Volume{"mineral wool": -1.62}, w.InsulatorVolume())
}

func TestInsulatedWall_RequiredResistanceOption(t *testing.T) {
	brick, wool := brickAndWool(t)

	w, err := NewInsulatedWall(6, 3, &brick, &wool, WithRequiredResistance(3.5))
	require.NoError(t, err)
	assert.Equal(t, 3.5, w.RequiredResistance())
	// (3.5 - 0.1149 - 1.1765 - 0.0435) * 0.04 = 0.0866
	assert.Equal(t, 0.09, w.RequiredInsulationThickness())

	_, err = NewInsulatedWall(6, 3, &brick, &wool, WithRequiredResistance(0))
	assert.ErrorIs(t, err, ErrRange)
}

func TestStructureCapability(t *testing.T) {
	brick, wool := brickAndWool(t)
	plain, err := NewWall(5, 3.1, &brick)
	require.NoError(t, err)
	insulated, err := NewInsulatedWall(6, 3, &brick, &wool)
	require.NoError(t, err)

	for _, s := range []Structure{plain, insulated} {
		assert.Positive(t, s.Area())
		assert.NotEmpty(t, s.MaterialVolumes())
	}
	assert.Len(t, insulated.MaterialVolumes(), 2)
}

func TestWallDescriptions(t *testing.T) {
	brick, wool := brickAndWool(t)
	plain, err := NewWall(5, 3.1, &brick)
	require.NoError(t, err)
	assert.Equal(t, "Wall, material brick, main layer thickness 0.6. Dimensions: length 5 m, height 3.1 m.", plain.String())
	assert.Equal(t, `NewWall(5, 3.1, NewMainMaterial("brick", 0.51, 0.6))`, plain.GoString())
	assert.Equal(t, plain.GoString(), fmt.Sprintf("%#v", plain))

	insulated, err := NewInsulatedWall(6, 3, &brick, &wool)
	require.NoError(t, err)
	assert.Equal(t, "Wall, material brick, main layer thickness 0.6. Dimensions: length 6 m, height 3 m. Insulator: mineral wool.", insulated.String())
	assert.Equal(t, `NewInsulatedWall(6, 3, NewMainMaterial("brick", 0.51, 0.6), NewMaterial("mineral wool", 0.04))`, insulated.GoString())

	zoned, err := NewInsulatedWall(6, 3, &brick, &wool, WithRequiredResistance(3.2))
	require.NoError(t, err)
	assert.Contains(t, zoned.GoString(), "WithRequiredResistance(3.2)")
}

func TestInsulatedWall_ResistanceShortfall(t *testing.T) {
	main, err := NewMainMaterial("brick", 0.51, 0.6)
	require.NoError(t, err)
	ins, err := NewMaterial("mineral wool", 0.04)
	require.NoError(t, err)

	w, err := NewInsulatedWall(6, 3, &main, &ins)
	require.NoError(t, err)
	assert.InDelta(t, 1.6551, w.ResistanceShortfall(), 1e-4)

	thick, err := NewMainMaterial("aerated concrete", 0.1, 0.5)
	require.NoError(t, err)
	w, err = NewInsulatedWall(6, 3, &thick, &ins)
	require.NoError(t, err)
	assert.Less(t, w.ResistanceShortfall(), 0.0)
}
