package numsys

import "strconv"

// Operand is either a variable (a track label) or an integer constant.
type Operand struct {
	Name    string
	Value   int
	IsConst bool
}

// Var is the operand for a variable.
func Var(name string) Operand {
	return Operand{Name: name}
}

// Const is the operand for an integer constant.
func Const(n int) Operand {
	return Operand{Value: n, IsConst: true}
}

func (o Operand) String() string {
	if o.IsConst {
		return strconv.Itoa(o.Value)
	}
	return o.Name
}
