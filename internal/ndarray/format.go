package ndarray

import (
	"strconv"
	"strings"
)

// String renders the array in nested-bracket notation, the innermost
// axis as a flat comma-separated list:
//
//	[[1, 2, 3],
//	 [4, 5, 6]]
func (a *NDArray) String() string {
	var sb strings.Builder
	writeRecursive(&sb, a.shape, a.data, 0, 1)
	return sb.String()
}

func writeRecursive(sb *strings.Builder, shape Shape, data []float64, start, depth int) {
	sb.WriteByte('[')
	if len(shape) == 1 {
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(data[start+i], 'g', -1, 64))
		}
		sb.WriteByte(']')
		return
	}

	childShape := shape[1:]
	childLen := childShape.NumElements()
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteString(",\n")
			sb.WriteString(strings.Repeat(" ", depth))
		}
		writeRecursive(sb, childShape, data, start+i*childLen, depth+1)
	}
	sb.WriteByte(']')
}
