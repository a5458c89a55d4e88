package service

import "strconv"

// Ellipsis marks a gap in a pagination sequence.
const Ellipsis = "..."

// GeneratePagination lists the page links to show for currentPage out of
// totalPages. Gaps are reported as Ellipsis.
func GeneratePagination(currentPage, totalPages int) []string {
	if totalPages <= 0 {
		return []string{}
	}

	// Few enough pages to show them all.
	if totalPages <= 7 {
		return pageRange(1, totalPages)
	}

	switch {
	case currentPage <= 3:
		return []string{"1", "2", "3", Ellipsis, itoa(totalPages - 1), itoa(totalPages)}
	case currentPage >= totalPages-2:
		return []string{"1", "2", Ellipsis, itoa(totalPages - 2), itoa(totalPages - 1), itoa(totalPages)}
	default:
		return []string{
			"1", Ellipsis,
			itoa(currentPage - 1), itoa(currentPage), itoa(currentPage + 1),
			Ellipsis, itoa(totalPages),
		}
	}
}

func pageRange(from, to int) []string {
	pages := make([]string, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, itoa(p))
	}
	return pages
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
