package assets

import (
	_ "embed"
)

// ZshHook contains the embedded zsh prompt integration script.
//
//go:embed shell/zsh.sh
var ZshHook string

// BashHook contains the embedded bash prompt integration script.
//
//go:embed shell/bash.sh
var BashHook string
