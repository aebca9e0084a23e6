package query

// Offset converts a 1-based page number into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// Pages returns the total page count for a result set. An empty result set
// is still one empty page.
func Pages(total, limit int) int {
	if total <= 0 || limit < 1 {
		return 1
	}
	return (total + limit - 1) / limit
}
