package shell

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skafara/cmparith"
)

// binaryOpPattern mirrors the original's (N)\s*([+-*/%])\s*(N), accepting
// optional whitespace around the operator but none required (spec.md §6:
// "optional whitespace around op"), e.g. "5+3", "5 +3", "5+ 3", "5 + 3"
// all match. A bank reference is "$" and digits; one outside the current
// bank is reported by Bank.Get as out of range, not as a format error.
var binaryOpPattern = regexp.MustCompile(`^(\$[0-9]+|0|-?[1-9][0-9]*)\s*([+\-*/%])\s*(\$[0-9]+|0|-?[1-9][0-9]*)$`)

// operandPattern is a single operand of the grammar, as used by "N!".
var operandPattern = regexp.MustCompile(`^(\$[0-9]+|0|-?[1-9][0-9]*)$`)

// operand parses a single grammar operand: either a bank reference ($N,
// looked up with Bank.Get) or a decimal literal accepted by cmparith.New,
// per spec.md §6.
func (r *REPL) operand(tok string) (cmparith.Integer, error) {
	if strings.HasPrefix(tok, "$") {
		n, err := strconv.Atoi(tok[1:])
		if err != nil {
			return cmparith.Integer{}, &InvalidCommandFormatError{Line: tok}
		}
		return r.bank.Get(n)
	}
	return cmparith.New(r.width, tok)
}

// binaryOps maps the grammar's operator tokens to the core operation they
// dispatch to.
var binaryOps = map[string]func(a, b cmparith.Integer) (cmparith.Integer, error){
	"+": cmparith.Add,
	"-": cmparith.Sub,
	"*": cmparith.Mul,
	"/": cmparith.Div,
	"%": cmparith.Mod,
}

// eval parses and executes one grammar-matching line (already trimmed),
// returning the result to push onto the bank, or an error. "bank" and
// "exit" are handled by the caller before eval is reached.
func (r *REPL) eval(line string) (cmparith.Integer, error) {
	if strings.HasSuffix(line, "!") {
		operand := strings.TrimSpace(strings.TrimSuffix(line, "!"))
		if !operandPattern.MatchString(operand) {
			return cmparith.Integer{}, &InvalidCommandFormatError{Line: line}
		}
		x, err := r.operand(operand)
		if err != nil {
			return cmparith.Integer{}, err
		}
		return cmparith.Factorial(x)
	}

	match := binaryOpPattern.FindStringSubmatch(line)
	if match == nil {
		return cmparith.Integer{}, &InvalidCommandFormatError{Line: line}
	}
	op, ok := binaryOps[match[2]]
	if !ok {
		return cmparith.Integer{}, &InvalidCommandFormatError{Line: line}
	}
	a, err := r.operand(match[1])
	if err != nil {
		return cmparith.Integer{}, err
	}
	b, err := r.operand(match[3])
	if err != nil {
		return cmparith.Integer{}, err
	}
	return op(a, b)
}
