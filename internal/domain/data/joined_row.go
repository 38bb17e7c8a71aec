package data

// JoinRows builds a joined row: every cell of left, followed by the cells
// of right at the positions listed in keep (in that order)
// Neither input is modified
func JoinRows(left, right Row, keep []int) Row {
	joined := make(Row, 0, len(left)+len(keep))
	joined = append(joined, left...)
	for _, pos := range keep {
		joined = append(joined, right[pos])
	}
	return joined
}
