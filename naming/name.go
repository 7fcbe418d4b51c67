package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// A Name is a hierarchical name that includes a series of tokens separated
// by dots.
type Name struct {
	Tokens []NameToken
}

// NameToken is a token of a name.
type NameToken struct {
	ElemName string
	Index    []int
}

// ParseName parses a name string. It panics if a bracket does not match or an
// index is not an integer.
func ParseName(sname string) Name {
	tokens := strings.Split(sname, ".")
	name := Name{Tokens: make([]NameToken, len(tokens))}

	for i, token := range tokens {
		name.Tokens[i] = parseNameToken(token)
	}

	return name
}

func parseNameToken(token string) NameToken {
	bracketMustMatch(token)

	parts := strings.Split(token, "[")
	indices := make([]int, len(parts)-1)

	for i := 1; i < len(parts); i++ {
		part := parts[i]
		if !strings.HasSuffix(part, "]") {
			panic("name index must be closed right after the number")
		}

		index, err := strconv.Atoi(part[:len(part)-1])
		if err != nil {
			panic("name index must be integer")
		}

		indices[i-1] = index
	}

	return NameToken{ElemName: parts[0], Index: indices}
}

func bracketMustMatch(token string) {
	open := 0

	for _, c := range token {
		switch c {
		case '[':
			open++
			if open > 1 {
				panic("name brackets must not nest")
			}
		case ']':
			open--
			if open < 0 {
				panic("name bracket must match")
			}
		}
	}

	if open != 0 {
		panic("name bracket must match")
	}
}

// NameMustBeValid panics if the name does not follow the naming convention:
//  1. Tokens are separated by dots and no token is empty, so "A..B" and
//     "A.B." are invalid.
//  2. Every token starts with a capital letter.
//  3. Tokens must not contain underscores, dashes, or quotes.
//  4. Elements in a series use square-bracket integer indices, e.g. "Seq[2]".
func NameMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("name %q is not valid: %v", name, r))
		}
	}()

	n := ParseName(name)
	for _, token := range n.Tokens {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token NameToken) {
	if token.ElemName == "" {
		panic("name element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(token.ElemName, c) {
			panic("name element must not contain " + c)
		}
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		panic("name element must start with a capital letter")
	}
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name and an
// index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
