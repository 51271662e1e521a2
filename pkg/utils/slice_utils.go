package utils

// CompareIntSlices 比较两个整数切片是否在长度和内容上都完全相同。
// 如果两个切片都为 nil，则认为它们是相同的。
func CompareIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CompareInt64Slices 比较两个 int64 切片是否在长度和内容上都完全相同
func CompareInt64Slices(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
