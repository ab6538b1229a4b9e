package cmd

import (
	"fmt"
	"io"
)

const usageText = `fastbash - quick script manager

Usage:
  fastbash create          Create a new script interactively
  fastbash edit <script>   Open a script in your editor
  fastbash <script> [...]  Run a saved script with optional args
  fastbash ls              List saved scripts
  fastbash rm <script>     Delete a saved script
  fastbash help            Show this help message

Notes:
  - Scripts are saved in ~/.fastbash/scripts ($FASTBASH_HOME/scripts if set)
  - Start scripts with a shebang line (e.g. #!/bin/bash)
  - Set the EDITOR environment variable to choose the editor
  - Enable tab completion with: source <(fastbash completion bash)
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
