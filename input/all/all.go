// Package all imports every input backend.
package all

import (
	_ "github.com/noriah/catwave/input/command"
	_ "github.com/noriah/catwave/input/silence"
	_ "github.com/noriah/catwave/input/synth"
	_ "github.com/noriah/catwave/input/text"
)
