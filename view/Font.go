package view

// 3x5 點陣數字
var digits = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
}

const glyphWidth = 3
const glyphHeight = 5

// GetCellsFromChar returns the lit cells of a digit as (col, row) offsets.
// Unknown characters have no cells.
func GetCellsFromChar(ch rune) [][2]int {
	rows, ok := digits[ch]
	if !ok {
		return nil
	}

	var cells [][2]int
	for r, line := range rows {
		for c, px := range line {
			if px == '#' {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}
