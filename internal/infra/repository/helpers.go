package repository

import "strconv"

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
