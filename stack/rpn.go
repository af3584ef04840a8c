package stack

import (
	"fmt"
	"strconv"
)

// EvalRPN evaluates tokens in Reverse Polish Notation. Operands are decimal
// integers (optionally signed); operators are "+", "-", "*" and "/".
//
// Complexity: O(n) time, O(n) space.
func EvalRPN(tokens []string) (int, error) {
	st := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/":
			if len(st) < 2 {
				return 0, fmt.Errorf("%w: operator %q needs two operands", ErrMalformedExpression, tok)
			}
			a, b := st[len(st)-2], st[len(st)-1]
			st = st[:len(st)-2]
			v, err := apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			st = append(st, v)
		default:
			v, err := operand(tok)
			if err != nil {
				return 0, err
			}
			st = append(st, v)
		}
	}

	return single(st)
}

// EvalRPNIfElse dispatches with an if/else chain and checks operands via a
// small pop helper.
func EvalRPNIfElse(tokens []string) (int, error) {
	var st []int
	pop := func() (int, bool) {
		if len(st) == 0 {
			return 0, false
		}
		v := st[len(st)-1]
		st = st[:len(st)-1]
		return v, true
	}
	for _, tok := range tokens {
		if isOperator(tok) {
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return 0, fmt.Errorf("%w: operator %q needs two operands", ErrMalformedExpression, tok)
			}
			var v int
			if tok == "+" {
				v = a + b
			} else if tok == "-" {
				v = a - b
			} else if tok == "*" {
				v = a * b
			} else {
				if b == 0 {
					return 0, ErrDivisionByZero
				}
				v = a / b
			}
			st = append(st, v)
		} else {
			v, err := operand(tok)
			if err != nil {
				return 0, err
			}
			st = append(st, v)
		}
	}

	return single(st)
}

// opTable maps each operator to its binary function.
var opTable = map[string]func(a, b int) (int, error){
	"+": func(a, b int) (int, error) { return a + b, nil },
	"-": func(a, b int) (int, error) { return a - b, nil },
	"*": func(a, b int) (int, error) { return a * b, nil },
	"/": func(a, b int) (int, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	},
}

// EvalRPNOpTable looks operators up in a function table.
func EvalRPNOpTable(tokens []string) (int, error) {
	st := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		op, ok := opTable[tok]
		if !ok {
			v, err := operand(tok)
			if err != nil {
				return 0, err
			}
			st = append(st, v)
			continue
		}
		if len(st) < 2 {
			return 0, fmt.Errorf("%w: operator %q needs two operands", ErrMalformedExpression, tok)
		}
		v, err := op(st[len(st)-2], st[len(st)-1])
		if err != nil {
			return 0, err
		}
		st = append(st[:len(st)-2], v)
	}

	return single(st)
}

// EvalRPNRecursive evaluates from the last token backwards: an operator
// consumes the right operand's subtree, then the left one.
// Complexity: O(n) time, O(depth) stack.
func EvalRPNRecursive(tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}
	v, next, err := evalFrom(tokens, len(tokens)-1)
	if err != nil {
		return 0, err
	}
	if next != -1 {
		return 0, fmt.Errorf("%w: %d unused tokens", ErrMalformedExpression, next+1)
	}

	return v, nil
}

// evalFrom evaluates the subtree rooted at tokens[i] and returns the index
// just before that subtree.
func evalFrom(tokens []string, i int) (int, int, error) {
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: missing operand", ErrMalformedExpression)
	}
	tok := tokens[i]
	if !isOperator(tok) {
		v, err := operand(tok)
		return v, i - 1, err
	}
	b, next, err := evalFrom(tokens, i-1)
	if err != nil {
		return 0, 0, err
	}
	a, next, err := evalFrom(tokens, next)
	if err != nil {
		return 0, 0, err
	}
	v, err := apply(tok, a, b)

	return v, next, err
}

// EvalRPNInPlace uses a copy of tokens as its own stack: results are written
// back over consumed slots and top tracks the stack height.
// Complexity: O(n) time, O(n) space for the copy.
func EvalRPNInPlace(tokens []string) (int, error) {
	buf := make([]string, len(tokens))
	copy(buf, tokens)
	top := 0
	for _, tok := range buf {
		if !isOperator(tok) {
			if _, err := operand(tok); err != nil {
				return 0, err
			}
			buf[top] = tok
			top++
			continue
		}
		if top < 2 {
			return 0, fmt.Errorf("%w: operator %q needs two operands", ErrMalformedExpression, tok)
		}
		a, _ := strconv.Atoi(buf[top-2])
		b, _ := strconv.Atoi(buf[top-1])
		v, err := apply(tok, a, b)
		if err != nil {
			return 0, err
		}
		top--
		buf[top-1] = strconv.Itoa(v)
	}
	if top != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, top)
	}

	return strconv.Atoi(buf[0])
}

// EvalRPNInfix converts the postfix tokens to a fully parenthesised infix
// string and evaluates that with a recursive-descent parser.
func EvalRPNInfix(tokens []string) (int, error) {
	expr, err := ToInfix(tokens)
	if err != nil {
		return 0, err
	}
	p := &infixParser{src: expr}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("%w: trailing input at %d", ErrMalformedExpression, p.pos)
	}

	return v, nil
}

// ToInfix renders postfix tokens as a parenthesised infix expression,
// e.g. ["2","1","+","3","*"] becomes "((2 + 1) * 3)".
func ToInfix(tokens []string) (string, error) {
	var st []string
	for _, tok := range tokens {
		if !isOperator(tok) {
			if _, err := operand(tok); err != nil {
				return "", err
			}
			st = append(st, tok)
			continue
		}
		if len(st) < 2 {
			return "", fmt.Errorf("%w: operator %q needs two operands", ErrMalformedExpression, tok)
		}
		a, b := st[len(st)-2], st[len(st)-1]
		st = append(st[:len(st)-2], "("+a+" "+tok+" "+b+")")
	}
	if len(st) != 1 {
		return "", fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(st))
	}

	return st[0], nil
}

// infixParser evaluates
//
//	expr    = term { ("+" | "-") term }
//	term    = primary { ("*" | "/") primary }
//	primary = "(" expr ")" | ["-"|"+"] digits
type infixParser struct {
	src string
	pos int
}

func (p *infixParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *infixParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *infixParser) expr() (int, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		c := p.peek()
		if c != '+' && c != '-' {
			return v, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *infixParser) term() (int, error) {
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	for {
		c := p.peek()
		if c != '*' && c != '/' {
			return v, nil
		}
		p.pos++
		rhs, err := p.primary()
		if err != nil {
			return 0, err
		}
		if v, err = apply(string(c), v, rhs); err != nil {
			return 0, err
		}
	}
}

func (p *infixParser) primary() (int, error) {
	if p.peek() == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing ')' at %d", ErrMalformedExpression, p.pos)
		}
		p.pos++
		return v, nil
	}
	p.skipSpace()
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.src) && '0' <= p.src[p.pos] && p.src[p.pos] <= '9' {
		p.pos++
	}

	return operand(p.src[start:p.pos])
}

func isOperator(tok string) bool {
	return tok == "+" || tok == "-" || tok == "*" || tok == "/"
}

func operand(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad token %q", ErrMalformedExpression, tok)
	}
	return v, nil
}

func apply(op string, a, b int) (int, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedExpression, op)
}

func single(st []int) (int, error) {
	if len(st) != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(st))
	}
	return st[0], nil
}
