package erasure

import (
	"github.com/sourya7/go-eff/v2/iooption"
	"github.com/sourya7/go-eff/v2/ioresult"
	"github.com/sourya7/go-eff/v2/option"
	"github.com/sourya7/go-eff/v2/readerioresult"
	"github.com/sourya7/go-eff/v2/record"
)

type (
	Option[T any]              = option.Option[T]
	IOResult[T any]            = ioresult.IOResult[T]
	IOOption[T any]            = iooption.IOOption[T]
	Entry[K comparable, V any] = record.Entry[K, V]
	ReaderIOResult[R, T any]   = readerioresult.ReaderIOResult[R, T]
)
