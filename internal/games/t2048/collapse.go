package t2048

// CollapseRow slides a row toward index 0 and merges equal neighbours.
// A merged tile never merges again in the same call, so [2,2,2] becomes [4,2,0].
// Returns the new row and the sum of the merged values.
func CollapseRow(row []int) (result []int, points int) {
	tiles := make([]int, 0, len(row))
	for _, v := range row {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	result = make([]int, 0, len(row))
	for i := 0; i < len(tiles); {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result = append(result, merged)
			points += merged
			i += 2
			continue
		}
		result = append(result, tiles[i])
		i++
	}

	for len(result) < len(row) {
		result = append(result, 0)
	}
	return result, points
}
