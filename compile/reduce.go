package compile

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/autoseq/token"
)

// Reduce rearranges tokens from infix into postfix order.
//
// Operands are moved to the output directly. Opening parentheses and
// quantifiers are always pushed onto the operator stack. Any other operator
// first pops operators of lower or equal priority value (i.e. binding
// tighter or equal) to the output; a right-associative operator stops at
// equal priority. A closing parenthesis pops up to its matching opening
// parenthesis, which is dropped.
func Reduce(tokens []token.Token) ([]token.Token, error) {
	ops := arraystack.New()
	out := arraylist.New()
	for _, t := range tokens {
		switch {
		case t.IsOperand():
			out.Add(t)
		case t.Kind() == token.LeftParen || t.IsQuantifier():
			ops.Push(t)
		case t.Kind() == token.RightParen:
			matched := false
			for !ops.Empty() {
				v, _ := ops.Pop()
				top := v.(token.Token)
				if top.Kind() == token.LeftParen {
					matched = true
					break
				}
				out.Add(top)
			}
			if !matched {
				return nil, newError(SyntaxError, ")", t.Pos(), "unbalanced parenthesis")
			}
		default:
			for !ops.Empty() {
				v, _ := ops.Peek()
				top := v.(token.Token)
				if top.Priority() > t.Priority() {
					break
				}
				if t.RightAssoc() && top.Priority() == t.Priority() {
					break
				}
				ops.Pop()
				out.Add(top)
			}
			ops.Push(t)
		}
	}
	for !ops.Empty() {
		v, _ := ops.Pop()
		top := v.(token.Token)
		if top.Kind() == token.LeftParen {
			return nil, newError(SyntaxError, "(", top.Pos(), "unbalanced parenthesis")
		}
		out.Add(top)
	}
	postfix := make([]token.Token, 0, out.Size())
	for _, v := range out.Values() {
		postfix = append(postfix, v.(token.Token))
	}
	ST().Debugf("postfix: %v", postfix)
	return postfix, nil
}
