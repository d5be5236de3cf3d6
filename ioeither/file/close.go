package file

import (
	"io"

	IOE "github.com/sourya7/go-eff/ioeither"
)

func onClose[R io.Closer](r R) IOE.IOEither[error, R] {
	return IOE.TryCatchError(func() (R, error) {
		return r, r.Close()
	})
}
