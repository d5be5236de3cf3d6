package exec

import (
	"github.com/sourya7/go-eff/exec"
	F "github.com/sourya7/go-eff/function"
	IOE "github.com/sourya7/go-eff/ioeither"
	G "github.com/sourya7/go-eff/ioeither/generic"
)

var (
	// Command executes a command
	Command = F.Curry3(G.Command[IOE.IOEither[error, exec.CommandOutput]])
)
