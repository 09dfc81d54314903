package shadetex

// ShadowTable maps each palette index to the substitute palette index at
// every shadow level, from level 0 (brightest, the color itself) to level 7
// (darkest, always index 0).
type ShadowTable [PaletteSize][ShadowLevels]uint8

// DefaultShadowTable is the hand-authored shading ramp for DefaultPalette.
var DefaultShadowTable = ShadowTable{
	0:  {0, 0, 0, 0, 0, 0, 0, 0},
	1:  {1, 1, 1, 0, 0, 0, 0, 0},
	2:  {2, 2, 21, 21, 1, 0, 0, 0},
	3:  {3, 3, 19, 19, 1, 1, 0, 0},
	4:  {4, 4, 20, 20, 21, 1, 0, 0},
	5:  {5, 5, 21, 21, 1, 0, 0, 0},
	6:  {6, 13, 13, 5, 5, 21, 1, 0},
	7:  {7, 6, 6, 13, 5, 5, 1, 0},
	8:  {8, 8, 24, 24, 2, 21, 1, 0},
	9:  {9, 9, 25, 25, 4, 20, 21, 0},
	10: {10, 10, 9, 25, 4, 20, 1, 0},
	11: {11, 11, 27, 27, 3, 19, 1, 0},
	12: {12, 12, 16, 16, 1, 1, 0, 0},
	13: {13, 13, 5, 5, 21, 1, 0, 0},
	14: {14, 14, 8, 8, 24, 2, 1, 0},
	15: {15, 15, 4, 4, 20, 21, 1, 0},
	16: {16, 16, 1, 1, 0, 0, 0, 0},
	17: {17, 17, 19, 19, 1, 1, 0, 0},
	18: {18, 18, 2, 2, 21, 1, 0, 0},
	19: {19, 19, 1, 1, 0, 0, 0, 0},
	20: {20, 20, 21, 21, 1, 0, 0, 0},
	21: {21, 21, 1, 0, 0, 0, 0, 0},
	22: {22, 22, 5, 5, 21, 1, 0, 0},
	23: {23, 23, 14, 14, 8, 24, 2, 0},
	24: {24, 24, 2, 2, 21, 1, 0, 0},
	25: {25, 25, 4, 4, 20, 21, 1, 0},
	26: {26, 26, 11, 11, 27, 3, 19, 0},
	27: {27, 27, 3, 3, 19, 1, 0, 0},
	28: {28, 28, 12, 12, 16, 1, 0, 0},
	29: {29, 29, 13, 13, 5, 21, 1, 0},
	30: {30, 30, 24, 24, 2, 21, 1, 0},
	31: {31, 31, 8, 8, 24, 2, 1, 0},
}

// Validate checks that every entry references a valid palette index.
func (t *ShadowTable) Validate() error {
	for p := 0; p < PaletteSize; p++ {
		for s := 0; s < ShadowLevels; s++ {
			if int(t[p][s]) >= PaletteSize {
				return &InvalidIndexError{
					PaletteIndex: p,
					ShadowLevel:  s,
					Value:        int(t[p][s]),
				}
			}
		}
	}
	return nil
}
