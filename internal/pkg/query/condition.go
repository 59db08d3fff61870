package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// compareCondition implements a binary comparison (field <op> value).
type compareCondition struct {
	field string
	op    string
	value interface{}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// Eq generates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Gt generates "field > @pN". Used for keyset pagination.
func Gt(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: ">", value: value}
}
