package stats

import "strconv"

func uitoa(v uint64) string { return strconv.FormatUint(v, 10) }
func btoa(v bool) string    { return strconv.FormatBool(v) }
func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
