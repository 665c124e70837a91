package utils

import (
	"strings"
)

// OperatorMapping translates filter operator prefixes to SQL comparators.
// "ne" is supported here but deliberately not advertised through the HTTP
// route patterns.
var OperatorMapping = map[string]string{
	"eq":  "=",
	"ne":  "<>",
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// ParseFilter splits an "[op:]literal" query value into a SQL comparator and
// the raw literal. A missing or unknown operator prefix means equality;
// malformed values are rejected upstream by the request validators.
func ParseFilter(raw string) (sqlOp string, literal string) {
	if op, value, found := strings.Cut(raw, ":"); found {
		if comparator, known := OperatorMapping[op]; known {
			return comparator, value
		}
	}
	return OperatorMapping["eq"], raw
}
