package main

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/vovakirdan/banana/internal/core"
)

// maxRepeat bounds a single repeat count in a script.
const maxRepeat = 100000

var scriptCommands = map[rune]core.Command{
	'L': core.CommandMoveLeft,
	'R': core.CommandMoveRight,
	'J': core.CommandJump,
	'.': core.CommandNone,
}

// parseScript expands a command script into one command per tick.
//
// Each token is L (left), R (right), J (jump) or . (idle), optionally
// followed by a repeat count: "R4J.30" is four moves right, one jump and
// thirty idle ticks. Letters are case-insensitive and whitespace is ignored.
func parseScript(script string) ([]core.Command, error) {
	runes := []rune(script)
	var cmds []core.Command

	for i := 0; i < len(runes); {
		r := unicode.ToUpper(runes[i])
		if unicode.IsSpace(r) {
			i++
			continue
		}
		cmd, ok := scriptCommands[r]
		if !ok {
			return nil, fmt.Errorf("script: unknown command %q at position %d", runes[i], i)
		}
		i++

		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		count := 1
		if i > start {
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil || n < 1 || n > maxRepeat {
				return nil, fmt.Errorf("script: bad repeat count %q at position %d", string(runes[start:i]), start)
			}
			count = n
		}

		for range count {
			cmds = append(cmds, cmd)
		}
	}
	return cmds, nil
}
