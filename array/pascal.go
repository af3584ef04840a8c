package array

// PascalTriangle returns the first numRows rows of Pascal's triangle.
// numRows <= 0 yields an empty (non-nil) result.
//
// Each row starts as all ones; inner cells sum the two cells above.
//
// Complexity: O(numRows²) time and output.
func PascalTriangle(numRows int) [][]int {
	result := make([][]int, 0, max(numRows, 0))
	for i := 0; i < numRows; i++ {
		row := make([]int, i+1)
		row[0], row[i] = 1, 1
		for j := 1; j < i; j++ {
			row[j] = result[i-1][j-1] + result[i-1][j]
		}
		result = append(result, row)
	}

	return result
}

// PascalTriangleFromPrev appends 1, adjacent sums of the previous row, 1.
func PascalTriangleFromPrev(numRows int) [][]int {
	if numRows <= 0 {
		return [][]int{}
	}
	result := [][]int{{1}}
	for i := 1; i < numRows; i++ {
		prev := result[len(result)-1]
		row := []int{1}
		for j := 0; j < len(prev)-1; j++ {
			row = append(row, prev[j]+prev[j+1])
		}
		row = append(row, 1)
		result = append(result, row)
	}

	return result
}

// PascalTriangleBinomial fills row n with C(n,k) using the recurrence
// C(n,k) = C(n,k-1)·(n-k+1)/k, which stays exact in integers because the
// product is always divisible by k.
func PascalTriangleBinomial(numRows int) [][]int {
	result := make([][]int, 0, max(numRows, 0))
	for n := 0; n < numRows; n++ {
		row := make([]int, 1, n+1)
		row[0] = 1
		for k := 1; k <= n; k++ {
			row = append(row, row[k-1]*(n-k+1)/k)
		}
		result = append(result, row)
	}

	return result
}

// PascalTriangleRecursive builds rows 1..n-1 recursively, then appends row n.
// Complexity: O(numRows²) time, O(numRows) recursion depth.
func PascalTriangleRecursive(numRows int) [][]int {
	if numRows <= 0 {
		return [][]int{}
	}
	if numRows == 1 {
		return [][]int{{1}}
	}
	result := PascalTriangleRecursive(numRows - 1)
	prev := result[len(result)-1]
	row := make([]int, len(prev)+1)
	row[0], row[len(prev)] = 1, 1
	for i := 1; i < len(prev); i++ {
		row[i] = prev[i-1] + prev[i]
	}

	return append(result, row)
}

// PascalTriangleZip sums the previous row against itself shifted by one:
// [0, p...] + [p..., 0].
func PascalTriangleZip(numRows int) [][]int {
	if numRows <= 0 {
		return [][]int{}
	}
	result := [][]int{{1}}
	for len(result) < numRows {
		prev := result[len(result)-1]
		row := make([]int, len(prev)+1)
		for i := range row {
			var left, right int
			if i > 0 {
				left = prev[i-1]
			}
			if i < len(prev) {
				right = prev[i]
			}
			row[i] = left + right
		}
		result = append(result, row)
	}

	return result
}
