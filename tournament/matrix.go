package tournament

// WinMatrix counts wins keyed by (winner index, loser index). It is square
// over the roster, written only while the tournament runs and read only
// afterwards. Ties increment nothing.
type WinMatrix struct {
	counts [][]int
}

func NewWinMatrix(size int) *WinMatrix {
	counts := make([][]int, size)
	for i := range counts {
		counts[i] = make([]int, size)
	}
	return &WinMatrix{counts: counts}
}

func (m *WinMatrix) Size() int {
	return len(m.counts)
}

// AddWin records one win of agent winner over agent loser.
func (m *WinMatrix) AddWin(winner, loser int) {
	m.counts[winner][loser]++
}

// Wins returns how often agent winner beat agent loser.
func (m *WinMatrix) Wins(winner, loser int) int {
	return m.counts[winner][loser]
}

// TotalWins sums every cell, i.e. all decided matches of the tournament.
func (m *WinMatrix) TotalWins() int {
	total := 0
	for _, row := range m.counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

func (m *WinMatrix) addPairing(record PairingRecord) {
	m.counts[record.PlayerOne][record.PlayerTwo] += record.WinsOne
	m.counts[record.PlayerTwo][record.PlayerOne] += record.WinsTwo
}
