package client

// 3x5的數字字型，每個字是點亮的格子(x, y)
var digitRows = map[rune][5]string{
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

const letterWidth = 3

func getCellsFromChar(ch rune) [][2]int {
	rows, ok := digitRows[ch]
	if !ok {
		return nil
	}

	var cells [][2]int
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}
