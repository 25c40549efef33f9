package song

// Builtin returns the default song table.
func Builtin() Table {
	return NewTable(
		MustParse("Jingle Bells", jingleBells),
		MustParse("Deck the Halls", deckTheHalls),
		MustParse("A Huge Tree (Totoro)", hugeTree),
	)
}

// James Lord Pierpont
const jingleBells = `
	TEMPO, 22, TRANS, 40, // ~220 BPM
	C3F, L04, A3F, L04, G3F, L04, F3F, L04, // bar 1
	C3F, L2D, C3F, L08, C3F, L08, // bar 2
	C3F, L04, A3F, L04, G3F, L04, F3F, L04, // bar 3
	D3F, L2D, PAUSE, L04, // bar 4

	D3F, L04, A3D, L04, A3F, L04, G3F, L04, // bar 5
	E3F, L2D, PAUSE, L04, // bar 6
	C4F, L04, C4F, L04, A3D, L04, G3F, L04, // bar 7
	A3F, L2D, PAUSE, L04, // bar 8

	C3F, L04, A3F, L04, G3F, L04, F3F, L04, // bar 9
	C3F, L2D, PAUSE, L04, // bar 10
	C3F, L04, A3F, L04, G3F, L04, F3F, L04, // bar 11
	D3F, L2D, D3F, L04, // bar 12

	D3F, L04, A3D, L04, A3F, L04, G3F, L04, // bar 13
	C4F, L04, C4F, L04, C4F, L04, C4F, L08, C4F, L08, // bar 14
	D4F, L04, C4F, L04, A3D, L04, G3F, L04, // bar 15
	F3F, L02, C4F, L02, // bar 16

	A3F, L04, A3F, L04, A3F, L02, // bar 17
	A3F, L04, A3F, L04, A3F, L02, // bar 18
	A3F, L04, C4F, L04, F3F, L4D, G3F, L08, // bar 19
	A3F, L01, // bar 20

	A3D, L04, A3D, L04, A3D, L4D, A3D, L08, // bar 21
	A3D, L04, A3F, L04, A3F, L04, A3F, L08, A3F, L08, // bar 22
	A3F, L04, G3F, L04, G3F, L04, A3F, L04, // bar 23
	G3F, L02, C4F, L02, // bar 24

	A3F, L04, A3F, L04, A3F, L02, // bar 25
	A3F, L04, A3F, L04, A3F, L02, // bar 26
	A3F, L04, C4F, L04, F3F, L4D, G3F, L08, // bar 27
	A3F, L01, // bar 28

	A3D, L04, A3D, L04, A3D, L4D, A3D, L08, // bar 29
	A3D, L04, A3F, L04, A3F, L04, A3F, L08, A3F, L08, // bar 30
	C4F, L04, C4F, L04, A3D, L04, G3F, L04, // bar 31
	F3F, L01, // bar 32
`

// Traditional Welsh
const deckTheHalls = `
	TEMPO, 18, TRANS, 20, // ~180 BPM
	C5F, L4D, A4D, L08, A4F, L04, G4F, L04, // bar 1
	F4F, L04, G4F, L04, A4F, L04, F4F, L04, // bar 2
	G4F, L08, A4F, L08, A4D, L08, G4F, L08, A4F, L4D, G4F, L08, // bar 3
	F4F, L04, E4F, L04, F4F, L02, // bar 4
	C5F, L4D, A4D, L08, A4F, L04, G4F, L04, // bar 5
	F4F, L04, G4F, L04, A4F, L04, F4F, L04, // bar 6
	G4F, L08, A4F, L08, A4D, L08, G4F, L08, A4F, L4D, G4F, L08, // bar 7
	F4F, L04, E4F, L04, F4F, L02, // bar 8
	G4F, L4D, A4F, L08, A4D, L04, G4F, L04, // bar 9
	A4F, L4D, A4D, L08, C5F, L04, G4F, L04, // bar 10
	A4F, L08, B4F, L08, C5F, L04, D5F, L08, E5F, L08, F5F, L04, // bar 11
	E5F, L04, D5F, L04, C5F, L02, // bar 12
	C5F, L4D, A4D, L08, A4F, L04, G4F, L04, // bar 13
	F4F, L04, G4F, L04, A4F, L04, F4F, L04, // bar 14
	D5F, L04, D5F, L04, C5F, L4D, A4D, L08, // bar 15
	A4F, L04, G4F, L04, F4F, L02, // bar 16

	C5F, L4D, A4D, L08, A4F, L04, G4F, L04, // bar 1
	F4F, L04, G4F, L04, A4F, L04, F4F, L04, // bar 2
	G4F, L08, A4F, L08, A4D, L08, G4F, L08, A4F, L4D, G4F, L08, // bar 3
	F4F, L04, E4F, L04, F4F, L02, // bar 4
	C5F, L4D, A4D, L08, A4F, L04, G4F, L04, // bar 5
	F4F, L04, G4F, L04, A4F, L04, F4F, L04, // bar 6
	G4F, L08, A4F, L08, A4D, L08, G4F, L08, A4F, L4D, G4F, L08, // bar 7
	F4F, L04, E4F, L04, F4F, L02, // bar 8
	G4F, L4D, A4F, L08, A4D, L04, G4F, L04, // bar 9
	A4F, L4D, A4D, L08, C5F, L04, G4F, L04, // bar 10
	A4F, L08, B4F, L08, C5F, L04, D5F, L08, E5F, L08, F5F, L04, // bar 11
	E5F, L04, D5F, L04, C5F, L02, // bar 12
	C5F, L4D, A4D, L08, A4F, L04, G4F, L04, // bar 13
	F4F, L04, G4F, L04, A4F, L04, F4F, L04, // bar 14
	D5F, L04, D5F, L04, C5F, L4D, A4D, L08, // bar 15
	A4F, L04, G4F, L04, F4F, L02, // bar 16
`

// Joe Hisaishi, My Neighbor Totoro
const hugeTree = `
	TEMPO, 9, TRANS, 30, // ~90 BPM
	G2D, L16, C4F, L16, A3D, L16, G3F, L16, C4F, L08, A3D, L16, G3F, L16,
	D3D, L16, C4F, L16, A3D, L16, G3F, L16, C4F, L08, A3D, L16, G3F, L16, // bar 1

	A2D, L16, A3D, L16, F3F, L16, D3D, L16, A3D, L08, F3F, L16, D3D, L16,
	F3F, L16, A3D, L16, F3F, L16, D3D, L16, A3D, L08, F3F, L16, D3D, L16, // bar 2

	G3D, L16, C5F, L16, A4D, L16, G4F, L16, C5F, L08, A4D, L16, G4F, L16,
	G3D, L16, C5F, L16, A4D, L16, G4F, L16, C5F, L08, A4D, L16, D4F, L16, // bar 3

	PAUSE, L16, A4D, L16, F4F, L16, D4D, L16, A4D, L08, F4F, L16, D4D, L16,
	A4D, L08, PAUSE, L08, C4F, L08, D4D, L08, // bar 4

	F4F, L08, F3F, L08, F4F, L08, G4F, L08, D4D, L08, F3F, L08, C4F, L08, D4D, L08, // bar 5
	F4F, L08, D3D, L08, F4F, L08, A4D, L08, G4F, L08, D3D, L08, G4F, L08, A4D, L08, // bar 6
	C5F, L08, C3F, L08, C5F, L08, D5D, L08, D5F, L08, C5F, L08, A4D, L08, G4D, L08, // bar 7
	G4F, L08, D3F, L08, F4F, L04, G4F, L08, G3F, L08, C4F, L04, // bar 8

	F4F, L08, C3F, L08, F4F, L08, G4F, L08, D4D, L08, C3F, L08, C4F, L08, D4D, L08, // bar 9
	F4F, L08, D3D, L08, F4F, L08, A4D, L08, G4F, L08, D3D, L08, G4F, L08, A4D, L08, // bar 10
	C5F, L08, C3F, L08, C5F, L08, D5D, L08, D5F, L08, C5F, L08, G4F, L08, C4F, L08, // bar 11
	D4D, L08, G3F, L08, A3D, L08, C4F, L04, D4D, L08, D4F, L08, C4D, L08, // bar 12

	G4D, L08, G4D, L08, C4D, L08, A2D, L08, F3F, L08, A3D, L08, C4D, L08, A2D, L08, // bar 13
	C4D, L08, A3D, L08, G4D, L08, G4D, L08, F3F, L08, G4F, L08, F4F, L08, G4F, L08, // bar 14
	G4D, L08, G4F, L08, F4F, L08, D4D, L08, A3D, L08, G3F, L08, C3F, L08, G3F, L08, // bar 15
	C4F, L08, D4D, L08, G4F, L08, D4D, L04, D4F, L04, A2D, L08, // bar 16

	G4D, L08, G4D, L08, C4D, L08, A2D, L08, F3F, L08, A3D, L08, C4D, L08, A2D, L08, // bar 17
	C4D, L08, A3D, L08, G4D, L08, G4D, L08, F3F, L08, G4F, L08, F4F, L08, G4F, L08, // bar 18
	G4D, L08, A4D, L08, D4D, L08, D3D, L08, C4F, L08, D3D, L08, A3D, L08, C4F, L08, // bar 19
	A3D, L02, PAUSE, L04, C4F, L08, D4D, L08, // bar 20

	F4F, L08, F3F, L08, F4F, L08, G4F, L08, D4D, L08, F3F, L08, C4F, L08, D4D, L08, // bar 21
	F4F, L08, D3D, L08, F4F, L08, A4D, L08, G4F, L08, D3D, L08, G4F, L08, A4D, L08, // bar 22
	C5F, L08, C3F, L08, C5F, L08, D5D, L08, D5F, L08, C5F, L08, A4D, L08, G4D, L08, // bar 23
	G4F, L08, D3F, L08, F4F, L04, G4F, L08, G3F, L08, C4F, L08, D4D, L08, // bar 24

	F4F, L08, C3F, L08, F4F, L08, G4F, L08, D4D, L08, C3F, L08, C4F, L08, D4D, L08, // bar 25
	F4F, L08, D3D, L08, F4F, L08, A4D, L08, G4F, L08, D3D, L08, G4F, L08, A4D, L08, // bar 26
	C5F, L08, C5F, L08, C5F, L08, D5D, L08, D5F, L08, C5F, L08, G4F, L08, C4F, L08, // bar 27
	D4D, L08, G3F, L08, A3D, L08, C4F, L08, C4F, L08, // bar 28
`
